package climate

import "biome-painter/internal/core"

// State owns the editable masks of one grid and the result of the last run.
// The painting side mutates Land and Mountain between runs; the result is
// stale as soon as they change and is replaced wholesale by Compute.
type State struct {
	Land     *core.ByteGrid
	Mountain *core.ByteGrid

	result *Result
}

// NewState allocates empty masks for a w*h grid.
func NewState(w, h int) *State {
	return &State{
		Land:     core.NewByteGrid(w, h),
		Mountain: core.NewByteGrid(w, h),
	}
}

// Size reports the grid dimensions.
func (s *State) Size() core.Size { return s.Land.Size }

// Input returns the kernel view of the current masks.
func (s *State) Input() Input {
	return Input{Size: s.Land.Size, Land: s.Land.Cells(), Mountain: s.Mountain.Cells()}
}

// Compute recomputes the whole grid. The previous result is kept on error.
func (s *State) Compute(k Knobs) (*Result, error) {
	res, err := Compute(s.Input(), k)
	if err != nil {
		return nil, err
	}
	s.result = res
	return res, nil
}

// Result returns the last computed result, or nil when none is available.
func (s *State) Result() *Result { return s.result }

// Invalidate drops the last result.
func (s *State) Invalidate() { s.result = nil }

// Clear empties both masks and drops the last result.
func (s *State) Clear() {
	s.Land.Clear()
	s.Mountain.Clear()
	s.result = nil
}

// Cell returns the last computed cell at (x, y), or Unclassified.
func (s *State) Cell(x, y int) Cell {
	if s.result == nil {
		return Unclassified
	}
	x, y = s.Land.Wrap(x, y)
	return s.result.At(x, y)
}
