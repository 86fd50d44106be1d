// Package climate derives temperature, humidity and biome classes from a
// land/mountain mask on a cylindrical grid.
//
// A run is a pure function of the masks and Knobs: it builds the distance,
// coastal, current, ocean-wind and orographic layers, then classifies every
// land cell against the 5x5 biome matrix. Nothing carries over between runs.
package climate

import (
	"errors"
	"fmt"

	"biome-painter/internal/core"
)

var (
	// ErrEmptyGrid is returned for non-positive dimensions.
	ErrEmptyGrid = errors.New("climate: grid dimensions must be positive")
	// ErrMaskLength is returned when a mask does not cover W*H cells.
	ErrMaskLength = errors.New("climate: mask length does not match grid")
	// ErrMountainWithoutLand is returned when a mountain cell is not land.
	ErrMountainWithoutLand = errors.New("climate: mountain cell without land")
)

// Input is the kernel's view of the editable mask.
type Input struct {
	Size     core.Size
	Land     []uint8
	Mountain []uint8
}

// Validate checks the caller preconditions. Violations are caller bugs.
func (in Input) Validate() error {
	if in.Size.W <= 0 || in.Size.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, in.Size.W, in.Size.H)
	}
	n := in.Size.Cells()
	if len(in.Land) != n {
		return fmt.Errorf("%w: land has %d cells, want %d", ErrMaskLength, len(in.Land), n)
	}
	if len(in.Mountain) != n {
		return fmt.Errorf("%w: mountain has %d cells, want %d", ErrMaskLength, len(in.Mountain), n)
	}
	for i, m := range in.Mountain {
		if m != 0 && in.Land[i] == 0 {
			x, y := i%in.Size.W, i/in.Size.W
			return fmt.Errorf("%w at (%d,%d)", ErrMountainWithoutLand, x, y)
		}
	}
	return nil
}

// Layers holds the intermediate per-cell layers of a run.
type Layers struct {
	Distance  []int32
	Coastal   []uint8
	Currents  []Current
	OceanWind []int8
	Windward  []int32
	Leeward   []int32
}

// Result is the full output of one run.
type Result struct {
	Size   core.Size
	Cells  []Cell
	Layers Layers
}

// Compute runs the whole pipeline over the input.
func Compute(in Input, k Knobs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	size := in.Size

	layers := Layers{Distance: DistanceToCoast(size, in.Land)}
	layers.Coastal = CoastalMask(size, in.Land)
	layers.Currents = Currents(size, in.Land, layers.Coastal)
	layers.OceanWind = OceanWindExposure(size, in.Land, k.effectiveOceanWindSteps(), k.oceanWindThreshold())
	layers.Windward, layers.Leeward = OrographicShadow(size, in.Land, in.Mountain, k.ShadowStrength, k.effectiveShadowRange())

	cells := make([]Cell, size.Cells())
	forEachRowChunk(size.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			a := size.AbsLatitude(y)
			for x := 0; x < size.W; x++ {
				i := size.Index(x, y)
				if in.Land[i] == 0 {
					cells[i] = Unclassified
					continue
				}
				cells[i] = classifyCell(cellInputs{
					absLat:    a,
					mountain:  in.Mountain[i] != 0,
					distance:  layers.Distance[i],
					current:   layers.Currents[i],
					oceanWind: layers.OceanWind[i],
					windward:  layers.Windward[i],
					leeward:   layers.Leeward[i],
				}, k)
			}
		}
	})

	return &Result{Size: size, Cells: cells, Layers: layers}, nil
}

// At returns the cell at (x, y).
func (r *Result) At(x, y int) Cell { return r.Cells[r.Size.Index(x, y)] }

// TemperatureLevels returns the per-cell temperature tiers with -1 for ocean.
func (r *Result) TemperatureLevels() []int8 {
	out := make([]int8, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = int8(c.TemperatureLevel())
	}
	return out
}

// HumidityLevels returns the per-cell humidity tiers with -1 for ocean.
func (r *Result) HumidityLevels() []int8 {
	out := make([]int8, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = int8(c.HumidityLevel())
	}
	return out
}

// BiomeIDs returns the per-cell biome ids with -1 for ocean.
func (r *Result) BiomeIDs() []int16 {
	out := make([]int16, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = int16(c.BiomeID())
	}
	return out
}
