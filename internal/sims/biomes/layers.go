package biomes

import "biome-painter/internal/climate"

// layerMasks caches float masks derived from one climate result for the
// debug overlays.
type layerMasks struct {
	src *climate.Result

	warm, cold        []float32
	windward, leeward []float32
	oceanWind         []float32
	distance          []float32
}

func (w *World) masks() *layerMasks {
	res := w.state.Result()
	if res == nil {
		return nil
	}
	if w.layerCache != nil && w.layerCache.src == res {
		return w.layerCache
	}
	n := len(res.Cells)
	m := &layerMasks{
		src:       res,
		warm:      make([]float32, n),
		cold:      make([]float32, n),
		windward:  make([]float32, n),
		leeward:   make([]float32, n),
		oceanWind: make([]float32, n),
		distance:  make([]float32, n),
	}
	l := res.Layers

	var maxDist int32
	for _, d := range l.Distance {
		if !climate.Landlocked(d) && d > maxDist {
			maxDist = d
		}
	}
	for i := 0; i < n; i++ {
		switch l.Currents[i] {
		case climate.CurrentWarm:
			m.warm[i] = 1
		case climate.CurrentCold:
			m.cold[i] = 1
		}
		if l.Windward[i] > 0 {
			m.windward[i] = 1
		}
		if l.Leeward[i] > 0 {
			m.leeward[i] = 1
		}
		if l.OceanWind[i] > 0 {
			m.oceanWind[i] = 1
		}
		d := l.Distance[i]
		switch {
		case d <= 0:
		case climate.Landlocked(d) || maxDist == 0:
			m.distance[i] = 1
		default:
			m.distance[i] = float32(d) / float32(maxDist)
		}
	}
	w.layerCache = m
	return m
}

// CurrentMasks returns warm and cold current coast masks from the last run.
func (w *World) CurrentMasks() (warm, cold []float32) {
	m := w.masks()
	if m == nil {
		return nil, nil
	}
	return m.warm, m.cold
}

// ShadowMasks returns the windward and leeward masks from the last run.
func (w *World) ShadowMasks() (windward, leeward []float32) {
	m := w.masks()
	if m == nil {
		return nil, nil
	}
	return m.windward, m.leeward
}

// OceanWindMask marks land cells that receive ocean wind.
func (w *World) OceanWindMask() []float32 {
	m := w.masks()
	if m == nil {
		return nil
	}
	return m.oceanWind
}

// DistanceField returns distance to the coast normalised to [0, 1], with
// landlocked cells at 1.
func (w *World) DistanceField() []float32 {
	m := w.masks()
	if m == nil {
		return nil
	}
	return m.distance
}

// WindVectorAt returns the prevailing wind direction for the row containing
// grid coordinate y, as a unit step in screen space.
func (w *World) WindVectorAt(_, y float64) (float64, float64) {
	size := w.Size()
	row := size.ClampY(int(y))
	wind := climate.WindFor(size.Latitude(row))
	return float64(wind.DCol), float64(wind.DRow)
}
