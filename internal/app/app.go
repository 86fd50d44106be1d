//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"slices"

	"biome-painter/internal/render"
	"biome-painter/internal/sims/biomes"
	"biome-painter/internal/store"
	"biome-painter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the biome editor to the ebiten.Game interface.
type Game struct {
	world   *biomes.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	db      *store.DB
	mapName string
	logger  *slog.Logger
	notice  string

	scale    int
	hudWidth int
	seed     int64

	stroking     bool
	erasing      bool
	lastX, lastY int
}

// New constructs a Game for the provided world.
func New(world *biomes.World, scale int, seed int64, opts Options) *Game {
	if scale <= 0 {
		scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(world, scale),
		hud:      ui.NewHUD(world, opts.HUDWidth),
		db:       opts.Store,
		mapName:  opts.MapName,
		logger:   logger,
		scale:    scale,
		hudWidth: max(opts.HUDWidth, 0),
		seed:     seed,
	}
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.stroking = false
}

// Update handles per-frame input and refreshes the world display.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys()

	mapWidth := g.world.Size().W * g.scale
	consumed := g.hud.Update(mapWidth)
	g.overlay.Update()
	if !consumed {
		g.handlePointer(mapWidth)
	}

	g.world.Step()
	g.hud.SetStatus(g.status())
	return nil
}

func (g *Game) handleKeys() {
	w := g.world
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		w.ToggleView()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.Compute()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		w.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		w.SetBrushMode(biomes.BrushLand)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		w.SetBrushMode(biomes.BrushMountain)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		w.ClearFocus()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		w.AdjustBrushRadius(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		w.AdjustBrushRadius(1)
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		w.AdjustBrushRadius(1)
	} else if dy < 0 {
		w.AdjustBrushRadius(-1)
	}
}

func (g *Game) handlePointer(mapWidth int) {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		if g.stroking {
			g.stroking = false
			g.world.EndStroke()
		}
		return
	}

	mx, my := ebiten.CursorPosition()
	size := g.world.Size()
	if mx < 0 || mx >= mapWidth || my < 0 || my >= size.H*g.scale {
		return
	}
	gx, gy := mx/g.scale, my/g.scale

	if !g.stroking {
		justLeft := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		justRight := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
		if !justLeft && !justRight {
			return
		}
		g.stroking = true
		g.erasing = justRight
		g.lastX, g.lastY = gx, gy
		g.world.BeginStroke()
		g.world.PaintAt(gx, gy, g.erasing)
		return
	}
	g.strokeTo(gx, gy)
}

// strokeTo paints from the last pointer cell to (gx, gy) so fast drags leave
// no gaps.
func (g *Game) strokeTo(gx, gy int) {
	dx, dy := gx-g.lastX, gy-g.lastY
	steps := max(abs(dx), abs(dy))
	spacing := max(1, g.world.BrushRadius()/2)
	n := max(1, steps/spacing)
	for i := 1; i <= n; i++ {
		x := g.lastX + dx*i/n
		y := g.lastY + dy*i/n
		g.world.PaintAt(x, y, g.erasing)
	}
	g.lastX, g.lastY = gx, gy
}

func (g *Game) save() {
	if g.db == nil {
		g.notice = "no store configured"
		g.logger.Warn("save skipped, no store configured")
		return
	}
	st := g.world.State()
	m := &store.Map{
		Name:     g.mapName,
		Size:     g.world.Size(),
		Land:     slices.Clone(st.Land.Cells()),
		Mountain: slices.Clone(st.Mountain.Cells()),
		Knobs:    g.world.Knobs(),
	}
	if err := g.db.Save(m); err != nil {
		g.notice = "save failed"
		g.logger.Error("save map", "name", g.mapName, "error", err)
		return
	}
	g.notice = "saved " + m.Name
	g.logger.Info("map saved", "name", m.Name, "land", st.Land.Count())
}

func (g *Game) status() string {
	s := fmt.Sprintf("%s view  %s r=%d", g.world.View(), g.world.BrushMode(), g.world.BrushRadius())
	if g.world.Dirty() {
		s += "  *"
	}
	if g.notice != "" {
		s += "  " + g.notice
	}
	return s
}

// Draw renders the map, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.overlay.Draw(screen)
	size := g.world.Size()
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, size.W*g.scale, h)
}

// Layout returns the logical screen size: the map plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, max(s.H*g.scale, g.hud.Height())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
