package climate

// Cell is the classification of one grid cell. The zero value is an
// unclassified (ocean or not computed) cell.
type Cell struct {
	Temperature int8
	Humidity    int8
	Biome       BiomeID
	classified  bool
}

// Unclassified is the output for ocean cells.
var Unclassified = Cell{Biome: NoBiome}

// Classified reports whether the cell carries land levels and a biome.
func (c Cell) Classified() bool { return c.classified }

// TemperatureLevel returns the temperature tier, or -1 when unclassified.
func (c Cell) TemperatureLevel() int {
	if !c.classified {
		return -1
	}
	return int(c.Temperature)
}

// HumidityLevel returns the humidity tier, or -1 when unclassified.
func (c Cell) HumidityLevel() int {
	if !c.classified {
		return -1
	}
	return int(c.Humidity)
}

// BiomeID returns the biome, or NoBiome when unclassified.
func (c Cell) BiomeID() BiomeID {
	if !c.classified {
		return NoBiome
	}
	return c.Biome
}

func classifiedCell(t, h int) Cell {
	t, h = clampLevel(t), clampLevel(h)
	return Cell{
		Temperature: int8(t),
		Humidity:    int8(h),
		Biome:       Matrix[t][h],
		classified:  true,
	}
}

func baseTemperature(absLat float64) int {
	switch {
	case absLat < 10:
		return 4
	case absLat < 30:
		return 3
	case absLat < 40:
		return 2
	case absLat < 60:
		return 1
	default:
		return 0
	}
}

func baseHumidity(absLat float64) int {
	switch {
	case absLat <= 12:
		return 3
	case absLat <= 25:
		return 2
	case absLat <= 35:
		return 1
	case absLat <= 60:
		return 2
	default:
		return 1
	}
}

// cellInputs gathers the precomputed layer values for one land cell.
type cellInputs struct {
	absLat    float64
	mountain  bool
	distance  int32
	current   Current
	oceanWind int8
	windward  int32
	leeward   int32
}

// classifyCell applies the base latitude tiers and every modifier in order.
func classifyCell(in cellInputs, k Knobs) Cell {
	a := in.absLat
	t := baseTemperature(a)
	h := baseHumidity(a)

	if !k.SubtropicalDry && a > 25 && a <= 35 {
		h = 2
	}

	coastRange := k.effectiveCoastRange()
	if coastRange > 0 && int(in.distance) <= coastRange {
		h += k.CoastHumidity
	}
	if int(in.distance) >= k.InteriorDist {
		h += k.InteriorDry
	}

	switch in.current {
	case CurrentWarm:
		t++
		h++
	case CurrentCold:
		t--
		h--
	}

	h += int(in.oceanWind)
	h += int(in.windward)
	h -= int(in.leeward)

	if k.Cooling > 0 && in.mountain {
		t -= k.Cooling
	}

	if k.ITCZFloor {
		if a <= 10 {
			h = max(h, 3)
		} else if a <= 15 {
			h = max(h, 2)
		}
	}

	return classifiedCell(t, h)
}
