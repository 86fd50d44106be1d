package climate

import "biome-painter/internal/core"

// Current classifies the ocean current influencing a coastal cell.
type Current uint8

const (
	CurrentNone Current = iota
	CurrentWarm
	CurrentCold
)

func (c Current) String() string {
	switch c {
	case CurrentWarm:
		return "warm"
	case CurrentCold:
		return "cold"
	default:
		return "none"
	}
}

// currentMaxLatitude bounds the band where currents apply.
const currentMaxLatitude = 60

// CoastalMask flags land cells with at least one ocean 4-neighbour. x wraps;
// at the pole rows the missing vertical neighbour is the cell itself.
func CoastalMask(size core.Size, land []uint8) []uint8 {
	mask := make([]uint8, size.Cells())
	forEachRowChunk(size.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			up := size.ClampY(y - 1)
			down := size.ClampY(y + 1)
			for x := 0; x < size.W; x++ {
				i := size.Index(x, y)
				if land[i] == 0 {
					continue
				}
				if land[size.Index(size.WrapX(x-1), y)] == 0 ||
					land[size.Index(size.WrapX(x+1), y)] == 0 ||
					land[size.Index(x, up)] == 0 ||
					land[size.Index(x, down)] == 0 {
					mask[i] = 1
				}
			}
		}
	})
	return mask
}

// Currents marks coastal cells below 60 degrees as warm when ocean lies only to
// the west and cold when ocean lies only to the east.
func Currents(size core.Size, land, coastal []uint8) []Current {
	out := make([]Current, size.Cells())
	forEachRowChunk(size.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			if size.AbsLatitude(y) >= currentMaxLatitude {
				continue
			}
			for x := 0; x < size.W; x++ {
				i := size.Index(x, y)
				if coastal[i] == 0 {
					continue
				}
				oceanW := land[size.Index(size.WrapX(x-1), y)] == 0
				oceanE := land[size.Index(size.WrapX(x+1), y)] == 0
				switch {
				case oceanW && !oceanE:
					out[i] = CurrentWarm
				case oceanE && !oceanW:
					out[i] = CurrentCold
				}
			}
		}
	})
	return out
}
