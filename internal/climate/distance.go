package climate

import "biome-painter/internal/core"

// farFromCoast seeds land cells before the sweeps. Land with no reachable
// ocean keeps this value.
const farFromCoast int32 = 1 << 30

// Landlocked reports whether a distance value means no ocean was reachable.
func Landlocked(d int32) bool { return d >= farFromCoast }

// DistanceToCoast computes a two-pass chamfer distance from every land cell
// to the nearest ocean cell. Ocean cells are 0.
//
// The result is an upper bound on the 4-connected distance. Horizontal
// lookups stop at x=0 and x=W-1 and do not wrap the longitude seam, unlike
// every other layer.
func DistanceToCoast(size core.Size, land []uint8) []int32 {
	w, h := size.W, size.H
	dist := make([]int32, size.Cells())
	for i := range dist {
		if land[i] != 0 {
			dist[i] = farFromCoast
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := size.Index(x, y)
			if land[i] == 0 {
				continue
			}
			d := dist[i]
			if y > 0 {
				d = min(d, dist[i-w]+1)
			}
			if x > 0 {
				d = min(d, dist[i-1]+1)
			}
			dist[i] = d
		}
	}

	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			i := size.Index(x, y)
			if land[i] == 0 {
				continue
			}
			d := dist[i]
			if y < h-1 {
				d = min(d, dist[i+w]+1)
			}
			if x < w-1 {
				d = min(d, dist[i+1]+1)
			}
			dist[i] = d
		}
	}
	return dist
}
