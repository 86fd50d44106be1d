package climate

import "biome-painter/internal/core"

// Hillshade lights mountains from the west: each interior mountain cell gets
// the count of mountain neighbours in its west column minus those in its east
// column, clamped to [-3, 3]. Border rows and columns stay 0.
func Hillshade(size core.Size, mountain []uint8) []int8 {
	shade := make([]int8, size.Cells())
	w := size.W
	for y := 1; y < size.H-1; y++ {
		for x := 1; x < w-1; x++ {
			i := size.Index(x, y)
			if mountain[i] == 0 {
				continue
			}
			nw := int(mountain[i-w-1]) + int(mountain[i-1]) + int(mountain[i+w-1])
			se := int(mountain[i-w+1]) + int(mountain[i+1]) + int(mountain[i+w+1])
			shade[i] = int8(max(-3, min(3, nw-se)))
		}
	}
	return shade
}
