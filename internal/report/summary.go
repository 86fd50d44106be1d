// Package report summarises climate runs and writes them out as CSV, PNG and
// YAML.
package report

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"biome-painter/internal/climate"
	"biome-painter/internal/core"
)

// BiomeCount is one biome's share of the land, also the biomes.csv row.
type BiomeCount struct {
	ID          int     `csv:"id"`
	Biome       string  `csv:"biome"`
	Temperature int     `csv:"temperature"`
	Humidity    int     `csv:"humidity"`
	Cells       int     `csv:"cells"`
	Share       float64 `csv:"share"`
}

// Summary aggregates one climate result.
type Summary struct {
	Size       core.Size
	Land       int
	Ocean      int
	Coastal    int
	Landlocked int

	TemperatureMean float64
	TemperatureStd  float64
	HumidityMean    float64
	HumidityStd     float64

	// Biomes holds every biome in id order, including empty ones.
	Biomes []BiomeCount
}

// Summarize counts biomes and computes level statistics over land cells.
func Summarize(res *climate.Result) Summary {
	s := Summary{Size: res.Size, Biomes: make([]BiomeCount, climate.Levels*climate.Levels)}
	for t := 0; t < climate.Levels; t++ {
		for h := 0; h < climate.Levels; h++ {
			id := climate.Matrix[t][h]
			s.Biomes[id] = BiomeCount{ID: int(id), Biome: id.String(), Temperature: t, Humidity: h}
		}
	}

	temps := make([]float64, 0, len(res.Cells))
	hums := make([]float64, 0, len(res.Cells))
	for i, c := range res.Cells {
		if !c.Classified() {
			s.Ocean++
			continue
		}
		s.Land++
		s.Biomes[c.BiomeID()].Cells++
		temps = append(temps, float64(c.TemperatureLevel()))
		hums = append(hums, float64(c.HumidityLevel()))
		if res.Layers.Coastal != nil && res.Layers.Coastal[i] != 0 {
			s.Coastal++
		}
		if res.Layers.Distance != nil && climate.Landlocked(res.Layers.Distance[i]) {
			s.Landlocked++
		}
	}
	if s.Land > 0 {
		for i := range s.Biomes {
			s.Biomes[i].Share = float64(s.Biomes[i].Cells) / float64(s.Land)
		}
		s.TemperatureMean, s.TemperatureStd = meanStd(temps)
		s.HumidityMean, s.HumidityStd = meanStd(hums)
	}
	return s
}

func meanStd(x []float64) (float64, float64) {
	if len(x) < 2 {
		if len(x) == 1 {
			return x[0], 0
		}
		return 0, 0
	}
	return stat.MeanStdDev(x, nil)
}

// Dominant returns the most common biome, ties broken by lower id. It
// returns false when there is no land.
func (s Summary) Dominant() (BiomeCount, bool) {
	if s.Land == 0 {
		return BiomeCount{}, false
	}
	best := slices.MaxFunc(s.Biomes, func(a, b BiomeCount) int {
		if a.Cells != b.Cells {
			return a.Cells - b.Cells
		}
		return b.ID - a.ID
	})
	return best, true
}

// Distinct reports how many biomes cover at least one cell.
func (s Summary) Distinct() int {
	n := 0
	for _, b := range s.Biomes {
		if b.Cells > 0 {
			n++
		}
	}
	return n
}
