package core

import "sort"

// Size describes the dimensions of a simulation grid.
//
// Grids are cylindrical: the x axis (longitude) wraps while the y axis
// (latitude) is clamped at the poles. Row 0 is the north pole row.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }

// Index returns the linear slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// WrapX wraps a column index around the longitude seam.
func (s Size) WrapX(x int) int { return ((x % s.W) + s.W) % s.W }

// ClampY pins a row index to the pole rows.
func (s Size) ClampY(y int) int {
	if y < 0 {
		return 0
	}
	if y > s.H-1 {
		return s.H - 1
	}
	return y
}

// Latitude maps a row to degrees, +89 at row 0 down to -89 at the last row.
// Single-row grids sit at +89.
func (s Size) Latitude(y int) float64 {
	if s.H <= 1 {
		return 89
	}
	return 89 - 178*(float64(y)/float64(s.H-1))
}

// AbsLatitude returns the absolute latitude of a row in degrees.
func (s Size) AbsLatitude(y int) float64 {
	lat := s.Latitude(y)
	if lat < 0 {
		return -lat
	}
	return lat
}

// RowForLatitude returns the row closest to the given latitude.
func (s Size) RowForLatitude(lat float64) int {
	if s.H <= 1 {
		return 0
	}
	t := (89 - lat) / 178
	y := int(t*float64(s.H-1) + 0.5)
	return s.ClampY(y)
}

// Sim defines the minimal contract an interactive grid world must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Generator fills land and mountain masks for a grid of the given size.
// Implementations must keep every mountain cell on land.
type Generator func(size Size, seed int64, land, mountain []uint8)

var generators = map[string]Generator{}

// RegisterGenerator adds a mask generator under the provided name.
func RegisterGenerator(name string, g Generator) {
	if name == "" || g == nil {
		return
	}
	generators[name] = g
}

// LookupGenerator returns the generator registered under name.
func LookupGenerator(name string) (Generator, bool) {
	g, ok := generators[name]
	return g, ok
}

// GeneratorNames lists registered generators in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
