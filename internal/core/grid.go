package core

// ByteGrid stores a 2D mask of byte-sized cell values in row-major order.
type ByteGrid struct {
	Size
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{Size: Size{W: w, H: h}, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Wrap applies cylindrical wrapping: x wraps around the seam, y is clamped.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return g.WrapX(x), g.ClampY(y)
}

// At reports whether the wrapped cell at (x, y) is set.
func (g *ByteGrid) At(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)] != 0
}

// Set writes a 0/1 value at the wrapped coordinates.
func (g *ByteGrid) Set(x, y int, on bool) {
	x, y = g.Wrap(x, y)
	var v uint8
	if on {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
