package biomes

import (
	"slices"
	"testing"

	"biome-painter/internal/climate"
	"biome-painter/internal/core"
)

func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Generator = ""
	cfg.BrushRadius = 1
	return NewWithConfig(cfg)
}

func TestPaintLandAndMountain(t *testing.T) {
	world := newTestWorld(t, 20, 10)
	land := world.State().Land
	mtn := world.State().Mountain

	if !world.PaintAt(5, 5, false) {
		t.Fatal("painting on ocean must change cells")
	}
	// Radius 1 is a plus shape.
	for _, p := range [][2]int{{5, 5}, {4, 5}, {6, 5}, {5, 4}, {5, 6}} {
		if !land.At(p[0], p[1]) {
			t.Fatalf("cell %v not painted as land", p)
		}
	}
	if land.At(4, 4) {
		t.Fatal("diagonal neighbour outside radius painted")
	}
	if mtn.Count() != 0 {
		t.Fatal("land brush must not paint mountains")
	}
	if world.PaintAt(5, 5, false) {
		t.Fatal("repainting identical cells should report no change")
	}

	world.SetBrushMode(BrushMountain)
	world.PaintAt(12, 5, false)
	if !land.At(12, 5) || !mtn.At(12, 5) {
		t.Fatal("mountain brush must paint land and mountain")
	}

	// Erasing mountains keeps the land underneath.
	world.PaintAt(12, 5, true)
	if !land.At(12, 5) || mtn.At(12, 5) {
		t.Fatal("mountain erase must keep land and clear mountain")
	}

	world.SetBrushMode(BrushMountain)
	world.PaintAt(12, 5, false)
	world.SetBrushMode(BrushLand)
	world.PaintAt(12, 5, true)
	if land.At(12, 5) || mtn.At(12, 5) {
		t.Fatal("land erase must clear land and mountain")
	}
}

func TestPaintWrapsSeamAndClampsPoles(t *testing.T) {
	world := newTestWorld(t, 16, 6)
	world.SetBrushRadius(2)
	world.PaintAt(0, 0, false)

	land := world.State().Land
	if !land.At(15, 0) || !land.At(14, 0) {
		t.Fatal("brush should wrap across the longitude seam")
	}
	if !land.At(0, 2) {
		t.Fatal("brush should reach two rows down")
	}
	if land.At(0, 3) {
		t.Fatal("brush painted outside its radius")
	}
}

func TestBrushRadiusClamped(t *testing.T) {
	world := newTestWorld(t, 8, 8)
	world.SetBrushRadius(0)
	if world.BrushRadius() != BrushRadiusMin {
		t.Fatalf("radius = %d, want %d", world.BrushRadius(), BrushRadiusMin)
	}
	world.AdjustBrushRadius(100)
	if world.BrushRadius() != BrushRadiusMax {
		t.Fatalf("radius = %d, want %d", world.BrushRadius(), BrushRadiusMax)
	}
}

func TestBiomeViewComputesAfterStroke(t *testing.T) {
	world := newTestWorld(t, 32, 16)
	world.SetView(ViewBiome)
	if world.Dirty() {
		t.Fatal("entering the biome view must compute")
	}

	world.BeginStroke()
	world.PaintAt(10, 8, false)
	world.Step()
	if !world.Dirty() {
		t.Fatal("compute must wait for the stroke to finish")
	}
	x, y := 10, 8
	if _, name := world.Inspect(x, y); name != "Uncomputed biome" {
		t.Fatalf("fresh land inspected as %q", name)
	}

	world.EndStroke()
	if world.Dirty() {
		t.Fatal("ending a stroke in the biome view must compute")
	}
	cell := world.State().Cell(x, y)
	if !cell.Classified() {
		t.Fatal("painted land must be classified after the stroke")
	}
	world.Step()
	i := world.Size().Index(x, y)
	if got, want := int(world.Cells()[i]), displayBiomeBase+int(cell.BiomeID()); got != want {
		t.Fatalf("display value = %d, want %d", got, want)
	}
	if label, name := world.Inspect(x, y); label != "Biome" || name != cell.BiomeID().String() {
		t.Fatalf("inspect = %q %q", label, name)
	}
}

func TestEditorViewDefersCompute(t *testing.T) {
	world := newTestWorld(t, 24, 12)
	world.BeginStroke()
	world.PaintAt(3, 3, false)
	world.EndStroke()
	world.Step()
	if !world.Dirty() {
		t.Fatal("editor view must not compute")
	}
	if world.State().Result() != nil {
		t.Fatal("no result expected before the first compute")
	}
	if _, name := world.Inspect(3, 3); name != "Land" {
		t.Fatalf("inspect = %q, want Land", name)
	}
	if got := world.Cells()[world.Size().Index(3, 3)]; got != displayEditorLand {
		t.Fatalf("editor display = %d, want %d", got, displayEditorLand)
	}

	world.Compute()
	if world.View() != ViewBiome || world.Dirty() {
		t.Fatal("Compute must show a fresh biome view")
	}
}

func TestClearResetsViewAndFocus(t *testing.T) {
	world := newTestWorld(t, 16, 8)
	world.PaintAt(4, 4, false)
	world.ToggleFocus("Taiga")
	if world.View() != ViewBiome || world.Focus() != "Taiga" {
		t.Fatal("focusing a legend entry must show the biome view")
	}

	world.Clear()
	if world.View() != ViewEditor || world.Focus() != "" {
		t.Fatal("Clear must return to the editor view without focus")
	}
	if world.State().Land.Count() != 0 || world.State().Result() != nil {
		t.Fatal("Clear must empty masks and drop the result")
	}
}

func TestFocusDimsOtherCells(t *testing.T) {
	world := newTestWorld(t, 16, 8)
	world.PaintAt(8, 4, false)
	world.Compute()
	world.Step()

	landIdx := world.Size().Index(8, 4)
	oceanIdx := world.Size().Index(0, 0)
	base := world.Cells()[landIdx]

	world.ToggleFocus("Ocean")
	world.Step()
	if got := world.Cells()[oceanIdx]; got != displayOcean {
		t.Fatalf("focused ocean display = %d, want %d", got, displayOcean)
	}
	if got := world.Cells()[landIdx]; got != base+displayDimOffset {
		t.Fatalf("unfocused land display = %d, want %d", got, base+displayDimOffset)
	}

	world.ToggleFocus("Ocean")
	world.Step()
	if world.Focus() != "" || world.Cells()[landIdx] != base {
		t.Fatal("toggling the focused entry must clear the focus")
	}
}

func TestPaletteDimsTowardOcean(t *testing.T) {
	palette := (&World{}).Palette()
	if len(palette) != displayPaletteSize {
		t.Fatalf("palette size = %d, want %d", len(palette), displayPaletteSize)
	}
	if palette[displayOcean] != palette[displayOcean+displayDimOffset] {
		t.Fatal("dimmed ocean must equal ocean")
	}
	taiga, _ := climate.BiomeByName("Taiga")
	lit := palette[displayBiomeBase+int(taiga)]
	dim := palette[displayBiomeBase+int(taiga)+displayDimOffset]
	if lit == dim {
		t.Fatal("dimmed biome color must differ")
	}
	if lit != BiomeColor("Taiga") {
		t.Fatal("palette entry must match the legend color")
	}
}

func TestSetIntParameterClampsAndRecomputes(t *testing.T) {
	world := newTestWorld(t, 32, 16)
	world.PaintAt(16, 8, false)
	world.Compute()

	if !world.SetIntParameter("coast_range", 500) {
		t.Fatal("coast_range should be settable")
	}
	if got := world.Knobs().CoastRange; got != 60 {
		t.Fatalf("coast_range = %d, want 60", got)
	}
	if world.Dirty() {
		t.Fatal("knob change in the biome view must recompute")
	}
	if !world.SetBoolParameter("itcz_floor", false) || world.Knobs().ITCZFloor {
		t.Fatal("itcz_floor should toggle off")
	}
	if world.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !world.SetIntParameter("brush_radius", 99) || world.BrushRadius() != BrushRadiusMax {
		t.Fatal("brush_radius should clamp to the maximum")
	}

	snap := world.Parameters()
	p, ok := snap.Lookup("coast_range")
	if !ok || p.Value != "60" {
		t.Fatalf("snapshot coast_range = %+v", p)
	}
}

func TestResetUsesGenerator(t *testing.T) {
	core.RegisterGenerator("test-band", func(size core.Size, seed int64, land, mountain []uint8) {
		y := int(seed) % size.H
		for x := 0; x < size.W; x++ {
			land[size.Index(x, y)] = 1
		}
		mountain[size.Index(0, y)] = 1
	})

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 12, 6
	cfg.Seed = 2
	cfg.Generator = "test-band"
	world := NewWithConfig(cfg)

	world.Reset(0)
	first := slices.Clone(world.State().Land.Cells())
	if world.State().Land.Count() != 12 || !world.State().Land.At(0, 2) {
		t.Fatal("config seed should select row 2")
	}

	world.Reset(3)
	if !world.State().Land.At(5, 3) || world.State().Land.At(5, 2) {
		t.Fatal("explicit seed should replace the previous masks")
	}
	world.Reset(0)
	if !slices.Equal(first, world.State().Land.Cells()) {
		t.Fatal("Reset not deterministic")
	}
}

func TestLoadMasksRejectsBadInput(t *testing.T) {
	world := newTestWorld(t, 4, 2)
	if err := world.LoadMasks(make([]uint8, 3), make([]uint8, 8)); err == nil {
		t.Fatal("short land mask must be rejected")
	}
	land := []uint8{1, 1, 0, 0, 0, 0, 0, 0}
	mtn := []uint8{1, 0, 0, 0, 0, 0, 0, 0}
	if err := world.LoadMasks(land, mtn); err != nil {
		t.Fatalf("LoadMasks: %v", err)
	}
	if world.State().Land.Count() != 2 || world.State().Mountain.Count() != 1 {
		t.Fatal("masks not copied")
	}
}

func TestRegistryBuildsFromMap(t *testing.T) {
	factory, ok := core.Sims()["biomes"]
	if !ok {
		t.Fatal("biomes sim not registered")
	}
	sim := factory(map[string]string{"w": "40", "h": "20", "coast_range": "7", "brush": "3"})
	world, ok := sim.(*World)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if world.Size() != (core.Size{W: 40, H: 20}) {
		t.Fatalf("size = %+v", world.Size())
	}
	if world.Knobs().CoastRange != 7 || world.BrushRadius() != 3 {
		t.Fatal("map overrides not applied")
	}
}
