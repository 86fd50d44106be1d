package climate

import "biome-painter/internal/core"

// march walks n steps from (x, y) along step, wrapping x and clamping y, and
// calls visit with each cell index. It stops early when visit returns false.
func march(size core.Size, x, y int, step Wind, n int, visit func(i int) bool) {
	r, c := y, x
	for s := 0; s < n; s++ {
		r = size.ClampY(r + step.DRow)
		c = size.WrapX(c + step.DCol)
		if !visit(size.Index(c, r)) {
			return
		}
	}
}

// OceanWindExposure grants 1 to land cells whose upwind march of `steps`
// cells crosses at least `threshold` ocean cells.
func OceanWindExposure(size core.Size, land []uint8, steps, threshold int) []int8 {
	bonus := make([]int8, size.Cells())
	forEachRowChunk(size.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			upwind := WindFor(size.Latitude(y)).Reverse()
			for x := 0; x < size.W; x++ {
				i := size.Index(x, y)
				if land[i] == 0 {
					continue
				}
				ocean := 0
				march(size, x, y, upwind, steps, func(j int) bool {
					if land[j] == 0 {
						ocean++
					}
					return true
				})
				if ocean >= threshold {
					bonus[i] = 1
				}
			}
		}
	})
	return bonus
}

// OrographicShadow marks land cells that have a mountain within `rng` cells
// downwind (windward side, humidity bonus) or upwind (leeward side, humidity
// penalty). Both layers hold `strength` where marked. A zero strength leaves
// both layers empty.
func OrographicShadow(size core.Size, land, mountain []uint8, strength, rng int) (windward, leeward []int32) {
	windward = make([]int32, size.Cells())
	leeward = make([]int32, size.Cells())
	if strength == 0 {
		return windward, leeward
	}
	rng = max(1, rng)
	mark := int32(strength)

	forEachRowChunk(size.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			down := WindFor(size.Latitude(y))
			up := down.Reverse()
			for x := 0; x < size.W; x++ {
				i := size.Index(x, y)
				if land[i] == 0 {
					continue
				}
				march(size, x, y, down, rng, func(j int) bool {
					if mountain[j] != 0 {
						windward[i] = mark
						return false
					}
					return true
				})
				march(size, x, y, up, rng, func(j int) bool {
					if mountain[j] != 0 {
						leeward[i] = mark
						return false
					}
					return true
				})
			}
		}
	})
	return windward, leeward
}
