package core

import (
	"math"
	"testing"
)

func TestWrapXAndClampY(t *testing.T) {
	s := Size{W: 10, H: 5}
	cases := []struct{ in, want int }{{-1, 9}, {-11, 9}, {0, 0}, {10, 0}, {23, 3}}
	for _, c := range cases {
		if got := s.WrapX(c.in); got != c.want {
			t.Fatalf("WrapX(%d) = %d, want %d", c.in, got, c.want)
		}
	}
	if s.ClampY(-3) != 0 || s.ClampY(7) != 4 || s.ClampY(2) != 2 {
		t.Fatal("ClampY must pin rows to the poles")
	}
}

func TestLatitude(t *testing.T) {
	s := Size{W: 4, H: 179}
	if got := s.Latitude(0); got != 89 {
		t.Fatalf("row 0 latitude = %v, want 89", got)
	}
	if got := s.Latitude(178); got != -89 {
		t.Fatalf("last row latitude = %v, want -89", got)
	}
	if got := s.Latitude(89); math.Abs(got) > 1e-9 {
		t.Fatalf("middle row latitude = %v, want 0", got)
	}
	if got := s.AbsLatitude(178); got != 89 {
		t.Fatalf("abs latitude = %v, want 89", got)
	}
	if got := (Size{W: 3, H: 1}).Latitude(0); got != 89 {
		t.Fatalf("single row latitude = %v, want 89", got)
	}
}

func TestRowForLatitudeRoundTrips(t *testing.T) {
	s := Size{W: 8, H: 90}
	for y := 0; y < s.H; y++ {
		if got := s.RowForLatitude(s.Latitude(y)); got != y {
			t.Fatalf("RowForLatitude(Latitude(%d)) = %d", y, got)
		}
	}
	if s.RowForLatitude(120) != 0 || s.RowForLatitude(-120) != s.H-1 {
		t.Fatal("out-of-range latitudes must clamp to the poles")
	}
}

func TestByteGridWraps(t *testing.T) {
	g := NewByteGrid(6, 3)
	g.Set(-1, -5, true)
	if !g.At(5, 0) {
		t.Fatal("Set should wrap x and clamp y")
	}
	if !g.At(11, -1) {
		t.Fatal("At should wrap x and clamp y")
	}
	g.Set(2, 2, true)
	if g.Count() != 2 {
		t.Fatalf("count = %d, want 2", g.Count())
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatal("Clear must zero the grid")
	}

	empty := NewByteGrid(0, -2)
	if empty.Size != (Size{W: 1, H: 1}) {
		t.Fatalf("degenerate grid size = %+v", empty.Size)
	}
}

func TestGeneratorRegistry(t *testing.T) {
	RegisterGenerator("", func(Size, int64, []uint8, []uint8) {})
	RegisterGenerator("nil", nil)
	if _, ok := LookupGenerator(""); ok {
		t.Fatal("empty names must be ignored")
	}
	if _, ok := LookupGenerator("nil"); ok {
		t.Fatal("nil generators must be ignored")
	}

	RegisterGenerator("core-test", func(s Size, _ int64, land, _ []uint8) {
		land[s.Index(0, 0)] = 1
	})
	gen, ok := LookupGenerator("core-test")
	if !ok {
		t.Fatal("registered generator not found")
	}
	land := make([]uint8, 4)
	gen(Size{W: 2, H: 2}, 0, land, make([]uint8, 4))
	if land[0] != 1 {
		t.Fatal("generator not invoked")
	}
	found := false
	for _, n := range GeneratorNames() {
		found = found || n == "core-test"
	}
	if !found {
		t.Fatal("GeneratorNames missing registered generator")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() || a.IntN(100) != b.IntN(100) {
			t.Fatal("equal seeds must produce equal sequences")
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "g",
		Params: []Parameter{{Key: "a", Value: "1"}},
	}}}
	if p, ok := snap.Lookup("a"); !ok || p.Value != "1" {
		t.Fatalf("lookup = %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}
