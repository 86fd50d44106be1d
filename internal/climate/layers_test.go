package climate

import (
	"testing"

	"biome-painter/internal/core"
)

func TestWindFor(t *testing.T) {
	cases := []struct {
		lat  float64
		want Wind
	}{
		{10, Wind{DRow: 1, DCol: -1}},
		{29.9, Wind{DRow: 1, DCol: -1}},
		{30, Wind{DRow: -1, DCol: 1}},
		{45, Wind{DRow: -1, DCol: 1}},
		{60, Wind{DRow: 1, DCol: -1}},
		{85, Wind{DRow: 1, DCol: -1}},
		{0, Wind{DRow: -1, DCol: 1}},
		{-10, Wind{DRow: -1, DCol: 1}},
		{-45, Wind{DRow: 1, DCol: -1}},
		{-75, Wind{DRow: -1, DCol: 1}},
	}
	for _, tc := range cases {
		if got := WindFor(tc.lat); got != tc.want {
			t.Errorf("WindFor(%v) = %+v, want %+v", tc.lat, got, tc.want)
		}
	}
}

func TestOceanWindThreshold(t *testing.T) {
	cases := []struct {
		steps int
		want  int
	}{
		{42, 27},
		{10, 7},
		{1, 1},
		{0, 1},
		{-4, 1},
		{3, 2},
	}
	for _, tc := range cases {
		k := Knobs{OceanWindSteps: tc.steps}
		if got := k.oceanWindThreshold(); got != tc.want {
			t.Errorf("threshold for %d steps = %d, want %d", tc.steps, got, tc.want)
		}
	}
}

func TestOceanWindExposure(t *testing.T) {
	// Row 1 sits on the equator, where the wind blows north-east, so the
	// upwind march drops to row 2 and walks west along it.
	in := newInput(20, 3)
	in.setLand(10, 1)

	bonus := OceanWindExposure(in.Size, in.Land, 5, 3)
	if bonus[in.Size.Index(10, 1)] != 1 {
		t.Fatal("cell with open ocean upwind should get the bonus")
	}

	in.fillLand(0, 2, 19, 2)
	bonus = OceanWindExposure(in.Size, in.Land, 5, 3)
	if bonus[in.Size.Index(10, 1)] != 0 {
		t.Fatal("cell with land upwind should not get the bonus")
	}
	for x := 0; x < 20; x++ {
		if bonus[in.Size.Index(x, 0)] != 0 {
			t.Fatalf("ocean cell (%d,0) got a bonus", x)
		}
	}
}

// shadowScene builds a mountain column with one plain cell three steps
// downwind of it and one plain cell three steps upwind, inside a large land
// block in the northern westerlies.
func shadowScene() (in Input, plain, windwardCell [2]int) {
	in = newInput(64, 91)
	in.fillLand(10, 10, 40, 45)
	for y := 18; y <= 32; y++ {
		in.setMountain(20, y)
	}
	// Row 22 is about 45N; the wind there steps north-east.
	plain = [2]int{23, 22}
	// Row 28 is about 34N, still westerlies.
	windwardCell = [2]int{17, 28}
	return in, plain, windwardCell
}

func TestOrographicShadowLayers(t *testing.T) {
	in, plain, upwindCell := shadowScene()
	windward, leeward := OrographicShadow(in.Size, in.Land, in.Mountain, 2, 3)

	pi := in.Size.Index(plain[0], plain[1])
	if leeward[pi] != 2 || windward[pi] != 0 {
		t.Fatalf("plain cell windward=%d leeward=%d, want 0 and 2", windward[pi], leeward[pi])
	}
	wi := in.Size.Index(upwindCell[0], upwindCell[1])
	if windward[wi] != 2 || leeward[wi] != 0 {
		t.Fatalf("windward cell windward=%d leeward=%d, want 2 and 0", windward[wi], leeward[wi])
	}

	// One step short of the mountain.
	_, leeward = OrographicShadow(in.Size, in.Land, in.Mountain, 2, 2)
	if leeward[pi] != 0 {
		t.Fatal("range 2 should not reach the mountain three steps upwind")
	}
}

func TestOrographicShadowDisabled(t *testing.T) {
	in, _, _ := shadowScene()
	windward, leeward := OrographicShadow(in.Size, in.Land, in.Mountain, 0, 3)
	for i := range windward {
		if windward[i] != 0 || leeward[i] != 0 {
			t.Fatalf("cell %d marked with shadow disabled", i)
		}
	}
}

func TestRainShadowLowersHumidityByStrength(t *testing.T) {
	in, plain, _ := shadowScene()
	base := Knobs{
		SubtropicalDry: true,
		InteriorDist:   1000,
		ShadowRange:    3,
		OceanWindSteps: 42,
	}
	noShadow := mustCompute(t, in, base).At(plain[0], plain[1])

	for _, s := range []int{1, 2} {
		k := base
		k.ShadowStrength = s
		got := mustCompute(t, in, k).At(plain[0], plain[1])
		if diff := noShadow.HumidityLevel() - got.HumidityLevel(); diff != s {
			t.Fatalf("strength %d: humidity %d vs %d without shadow, diff %d",
				s, got.HumidityLevel(), noShadow.HumidityLevel(), diff)
		}
		if got.TemperatureLevel() != noShadow.TemperatureLevel() {
			t.Fatalf("strength %d changed temperature", s)
		}
	}
}

func TestEquatorialFloor(t *testing.T) {
	// 179 rows put row 84 at exactly 5 degrees north.
	in := newInput(16, 179)
	in.setLand(5, 84)
	k := DefaultKnobs()
	k.InteriorDist = 0
	k.InteriorDry = -10
	k.CoastRange = 0

	floored := mustCompute(t, in, k).At(5, 84)
	if floored.HumidityLevel() < 3 {
		t.Fatalf("humidity %d below the equatorial floor", floored.HumidityLevel())
	}

	k.ITCZFloor = false
	dry := mustCompute(t, in, k).At(5, 84)
	if dry.HumidityLevel() != 0 {
		t.Fatalf("humidity without floor = %d, want 0", dry.HumidityLevel())
	}
}

func TestClassifyCellModifiers(t *testing.T) {
	neutral := Knobs{SubtropicalDry: true, InteriorDist: 1 << 20}
	cases := []struct {
		name   string
		in     cellInputs
		k      Knobs
		wantT  int
		wantH  int
	}{
		{"Equator", cellInputs{absLat: 5, distance: 50}, neutral, 4, 3},
		{"SubtropicalDryBand", cellInputs{absLat: 30, distance: 50}, neutral, 2, 1},
		{"SubtropicalOverride", cellInputs{absLat: 30, distance: 50}, Knobs{InteriorDist: 1 << 20}, 2, 2},
		{"Polar", cellInputs{absLat: 80, distance: 50}, neutral, 0, 1},
		{"WarmCurrent", cellInputs{absLat: 45, distance: 1, current: CurrentWarm}, neutral, 2, 3},
		{"ColdCurrent", cellInputs{absLat: 45, distance: 1, current: CurrentCold}, neutral, 0, 1},
		{"CoastBonus", cellInputs{absLat: 45, distance: 2}, Knobs{SubtropicalDry: true, InteriorDist: 1 << 20, CoastHumidity: 1, CoastRange: 2}, 1, 3},
		{"CoastRangeZeroDisables", cellInputs{absLat: 45, distance: 0}, Knobs{SubtropicalDry: true, InteriorDist: 1 << 20, CoastHumidity: 1}, 1, 2},
		{"Interior", cellInputs{absLat: 45, distance: 60}, Knobs{SubtropicalDry: true, InteriorDist: 54, InteriorDry: -1}, 1, 1},
		{"MountainCooling", cellInputs{absLat: 5, distance: 50, mountain: true}, Knobs{SubtropicalDry: true, InteriorDist: 1 << 20, Cooling: 2}, 2, 3},
		{"CoolingIgnoresLowland", cellInputs{absLat: 5, distance: 50}, Knobs{SubtropicalDry: true, InteriorDist: 1 << 20, Cooling: 2}, 4, 3},
		{"WindwardLeeward", cellInputs{absLat: 45, distance: 50, oceanWind: 1, windward: 2, leeward: 1}, neutral, 1, 4},
		{"ClampHigh", cellInputs{absLat: 5, distance: 50, current: CurrentWarm, windward: 9}, neutral, 4, 4},
		{"ClampLow", cellInputs{absLat: 80, distance: 50, current: CurrentCold, leeward: 9}, neutral, 0, 0},
		{"ITCZNearBand", cellInputs{absLat: 14, distance: 50, leeward: 3}, Knobs{ITCZFloor: true, SubtropicalDry: true, InteriorDist: 1 << 20}, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := classifyCell(tc.in, tc.k)
			if c.TemperatureLevel() != tc.wantT || c.HumidityLevel() != tc.wantH {
				t.Fatalf("got t=%d h=%d, want t=%d h=%d", c.TemperatureLevel(), c.HumidityLevel(), tc.wantT, tc.wantH)
			}
			if c.BiomeID() != Matrix[tc.wantT][tc.wantH] {
				t.Fatalf("biome %v, want %v", c.BiomeID(), Matrix[tc.wantT][tc.wantH])
			}
		})
	}
}

func TestHillshade(t *testing.T) {
	size := core.Size{W: 5, H: 5}
	mtn := make([]uint8, size.Cells())
	mtn[size.Index(1, 2)] = 1
	mtn[size.Index(2, 2)] = 1
	mtn[size.Index(0, 0)] = 1

	shade := Hillshade(size, mtn)
	if got := shade[size.Index(2, 2)]; got != 1 {
		t.Fatalf("shade at (2,2) = %d, want 1", got)
	}
	if got := shade[size.Index(1, 2)]; got != -1 {
		t.Fatalf("shade at (1,2) = %d, want -1", got)
	}
	if got := shade[size.Index(0, 0)]; got != 0 {
		t.Fatalf("border cell shaded: %d", got)
	}
}

func TestBiomeTables(t *testing.T) {
	names := BiomeNames()
	if len(names) != 25 {
		t.Fatalf("got %d biome names, want 25", len(names))
	}
	if Matrix[0][0].String() != "Permanent ice" {
		t.Fatalf("coldest/driest = %q", Matrix[0][0].String())
	}
	if Matrix[4][4].String() != "Extreme rainforest" {
		t.Fatalf("hottest/wettest = %q", Matrix[4][4].String())
	}
	if NoBiome.String() != "Ocean" {
		t.Fatalf("NoBiome = %q", NoBiome.String())
	}
	for i, name := range names {
		id, ok := BiomeByName(name)
		if !ok || int(id) != i {
			t.Fatalf("BiomeByName(%q) = %d,%v", name, id, ok)
		}
	}
	if err := validateTables(); err != nil {
		t.Fatal(err)
	}
}

func TestKnobsFromMap(t *testing.T) {
	k := KnobsFromMap(map[string]string{
		"itcz_floor":       "false",
		"coast_range":      "3",
		"interior_dry":     "-2",
		"ocean_wind_steps": "oops",
	})
	if k.ITCZFloor {
		t.Fatal("itcz_floor should be overridden to false")
	}
	if k.CoastRange != 3 || k.InteriorDry != -2 {
		t.Fatalf("overrides not applied: %+v", k)
	}
	if k.OceanWindSteps != DefaultKnobs().OceanWindSteps {
		t.Fatalf("bad value should keep default, got %d", k.OceanWindSteps)
	}
	if p, ok := k.IntKnob("shadow_range"); !ok || *p != 18 {
		t.Fatal("IntKnob(shadow_range) should resolve to the default 18")
	}
	if _, ok := k.BoolKnob("nope"); ok {
		t.Fatal("unknown bool knob resolved")
	}
}

func TestStateComputeAndClear(t *testing.T) {
	s := NewState(8, 4)
	if s.Cell(0, 0).Classified() {
		t.Fatal("fresh state should be unclassified")
	}
	s.Land.Set(-1, 1, true)
	s.Mountain.Set(7, 1, true)

	if _, err := s.Compute(DefaultKnobs()); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !s.Cell(7, 1).Classified() || !s.Cell(-1, 1).Classified() {
		t.Fatal("painted cell should be classified through the seam")
	}

	s.Mountain.Set(0, 0, true)
	if _, err := s.Compute(DefaultKnobs()); err == nil {
		t.Fatal("mountain without land should fail")
	}
	if s.Result() == nil {
		t.Fatal("failed run should keep the previous result")
	}

	s.Clear()
	if s.Result() != nil || s.Land.Count() != 0 || s.Mountain.Count() != 0 {
		t.Fatal("Clear should empty masks and result")
	}
}
