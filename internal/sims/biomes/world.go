package biomes

import (
	"fmt"
	"log/slog"
	"time"

	"biome-painter/internal/climate"
	"biome-painter/internal/core"
)

// BrushMode selects what the brush paints.
type BrushMode uint8

// ViewMode selects what the display buffer shows.
type ViewMode uint8

const (
	BrushLand BrushMode = iota
	BrushMountain
)

const (
	ViewEditor ViewMode = iota
	ViewBiome
)

func (m BrushMode) String() string {
	if m == BrushMountain {
		return "mountain"
	}
	return "land"
}

func (v ViewMode) String() string {
	if v == ViewBiome {
		return "biome"
	}
	return "editor"
}

const (
	BrushRadiusMin = 1
	BrushRadiusMax = 40
)

func clampBrush(r int) int {
	return max(BrushRadiusMin, min(BrushRadiusMax, r))
}

// World is the editable biome map: painted masks, the last climate run and
// the display buffer derived from them.
type World struct {
	cfg Config

	w, h int

	state   *climate.State
	shade   []int8
	display []uint8

	view     ViewMode
	brush    BrushMode
	radius   int
	painting bool
	focus    string

	// dirty marks the classification stale; masksChanged additionally
	// invalidates the hillshade; redraw schedules a display rebuild.
	dirty        bool
	masksChanged bool
	redraw       bool

	layerCache *layerMasks

	logger *slog.Logger
}

// New returns a biome editor with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a biome editor configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		state:   climate.NewState(cfg.Width, cfg.Height),
		shade:   make([]int8, cfg.Width*cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
		radius:  clampBrush(cfg.BrushRadius),
		dirty:   true,
		redraw:  true,
		logger:  slog.Default(),
	}
	w.rebuildDisplay()
	return w
}

// SetLogger replaces the logger used for recompute diagnostics.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.logger = l
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "biomes" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// State exposes the masks and the last climate result.
func (w *World) State() *climate.State { return w.state }

// Knobs returns the active climate knobs.
func (w *World) Knobs() climate.Knobs { return w.cfg.Knobs }

// View reports the active view mode.
func (w *World) View() ViewMode { return w.view }

// Dirty reports whether the classification is stale.
func (w *World) Dirty() bool { return w.dirty }

// BrushMode reports the active brush mode.
func (w *World) BrushMode() BrushMode { return w.brush }

// BrushRadius reports the brush radius in cells.
func (w *World) BrushRadius() int { return w.radius }

// Reset regenerates the masks with the configured generator. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.state.Clear()
	if gen, ok := core.LookupGenerator(w.cfg.Generator); ok {
		gen(w.Size(), effective, w.state.Land.Cells(), w.state.Mountain.Cells())
	} else if w.cfg.Generator != "" {
		w.logger.Warn("unknown generator, starting blank", "generator", w.cfg.Generator)
	}
	w.markMasksChanged()
	if w.view == ViewBiome {
		w.compute()
	}
}

// Step recomputes a stale classification when the biome view is showing and
// no stroke is in progress, then refreshes the display buffer.
func (w *World) Step() {
	if w.dirty && w.view == ViewBiome && !w.painting {
		w.compute()
	}
	if w.redraw {
		w.rebuildDisplay()
	}
}

// SetBrushMode switches between land and mountain painting.
func (w *World) SetBrushMode(m BrushMode) { w.brush = m }

// SetBrushRadius sets the brush radius, clamped to the supported range.
func (w *World) SetBrushRadius(r int) { w.radius = clampBrush(r) }

// AdjustBrushRadius grows or shrinks the brush by delta cells.
func (w *World) AdjustBrushRadius(delta int) { w.SetBrushRadius(w.radius + delta) }

// BeginStroke marks the start of a paint or erase gesture.
func (w *World) BeginStroke() { w.painting = true }

// Painting reports whether a stroke is in progress.
func (w *World) Painting() bool { return w.painting }

// EndStroke finishes a gesture, recomputing when the biome view is showing.
func (w *World) EndStroke() {
	if !w.painting {
		return
	}
	w.painting = false
	if w.view == ViewBiome && w.dirty {
		w.compute()
	}
}

// PaintAt applies the circular brush centred on (gx, gy). Columns wrap and
// rows clamp. Painting mountain also paints land; erasing land also removes
// mountain. It reports whether any cell changed.
func (w *World) PaintAt(gx, gy int, erase bool) bool {
	size := w.Size()
	land := w.state.Land.Cells()
	mtn := w.state.Mountain.Cells()
	r := w.radius
	changed := false

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := size.Index(size.WrapX(gx+dx), size.ClampY(gy+dy))
			nextLand, nextMtn := land[i], mtn[i]
			switch {
			case !erase && w.brush == BrushLand:
				nextLand = 1
			case !erase:
				nextLand, nextMtn = 1, 1
			case w.brush == BrushLand:
				nextLand, nextMtn = 0, 0
			default:
				nextMtn = 0
			}
			if nextLand == land[i] && nextMtn == mtn[i] {
				continue
			}
			land[i], mtn[i] = nextLand, nextMtn
			changed = true
		}
	}
	if changed {
		w.markMasksChanged()
	}
	return changed
}

// SetView switches the display; entering the biome view recomputes a stale
// classification.
func (w *World) SetView(v ViewMode) {
	if w.view == v {
		return
	}
	w.view = v
	if v == ViewBiome && w.dirty {
		w.compute()
	}
	w.redraw = true
}

// ToggleView flips between the editor and biome views.
func (w *World) ToggleView() {
	if w.view == ViewBiome {
		w.SetView(ViewEditor)
		return
	}
	w.SetView(ViewBiome)
}

// Compute forces a full recompute and shows the biome view.
func (w *World) Compute() {
	w.compute()
	w.view = ViewBiome
	w.redraw = true
}

// Clear empties the map, drops the classification and returns to the
// editor view with no focused biome.
func (w *World) Clear() {
	w.state.Clear()
	w.view = ViewEditor
	w.focus = ""
	w.markMasksChanged()
}

// LoadMasks replaces the painted masks, e.g. from a saved map.
func (w *World) LoadMasks(land, mountain []uint8) error {
	in := climate.Input{Size: w.Size(), Land: land, Mountain: mountain}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("load masks: %w", err)
	}
	copy(w.state.Land.Cells(), land)
	copy(w.state.Mountain.Cells(), mountain)
	w.state.Invalidate()
	w.markMasksChanged()
	if w.view == ViewBiome {
		w.compute()
	}
	return nil
}

// SetKnobs replaces the climate knobs, recomputing when the biome view is
// showing.
func (w *World) SetKnobs(k climate.Knobs) {
	w.cfg.Knobs = k
	w.knobsChanged()
}

func (w *World) knobsChanged() {
	w.dirty = true
	if w.view == ViewBiome {
		w.compute()
	}
}

func (w *World) markMasksChanged() {
	w.dirty = true
	w.masksChanged = true
	w.redraw = true
}

func (w *World) compute() {
	start := time.Now()
	res, err := w.state.Compute(w.cfg.Knobs)
	if err != nil {
		w.logger.Error("climate compute failed", "error", err)
		return
	}
	w.dirty = false
	w.redraw = true
	w.logger.Debug("climate computed",
		"size", fmt.Sprintf("%dx%d", w.w, w.h),
		"land", w.state.Land.Count(),
		"elapsed", time.Since(start).Round(time.Microsecond),
		"cells", len(res.Cells),
	)
}

// Inspect describes the cell under (x, y) for a hover tooltip. The label is
// "Biome" in the biome view and "Surface" in the editor view.
func (w *World) Inspect(x, y int) (label, name string) {
	size := w.Size()
	x, y = size.WrapX(x), size.ClampY(y)
	i := size.Index(x, y)
	label = "Surface"
	if w.view == ViewBiome {
		label = "Biome"
	}
	if w.state.Land.Cells()[i] == 0 {
		return label, "Ocean"
	}
	if w.view == ViewBiome {
		c := w.state.Cell(x, y)
		if !c.Classified() {
			return label, "Uncomputed biome"
		}
		return label, c.BiomeID().String()
	}
	if w.state.Mountain.Cells()[i] != 0 {
		return label, "Mountain"
	}
	return label, "Land"
}

// cellName is the legend name of a cell in the biome view, empty for land
// that has not been classified yet.
func (w *World) cellName(i int) string {
	if w.state.Land.Cells()[i] == 0 {
		return "Ocean"
	}
	res := w.state.Result()
	if res == nil || !res.Cells[i].Classified() {
		return ""
	}
	return res.Cells[i].BiomeID().String()
}

// Focus returns the focused legend entry, or "" when none is focused.
func (w *World) Focus() string { return w.focus }

// ToggleFocus focuses a legend entry, or clears the focus when it is already
// focused. Focusing shows the biome view.
func (w *World) ToggleFocus(name string) {
	if w.focus == name {
		w.focus = ""
	} else {
		w.focus = name
	}
	w.view = ViewBiome
	if w.dirty {
		w.compute()
	}
	w.redraw = true
}

// ClearFocus removes any legend focus.
func (w *World) ClearFocus() {
	if w.focus == "" {
		return
	}
	w.focus = ""
	w.redraw = true
}

func init() {
	core.Register("biomes", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
