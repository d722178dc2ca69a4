package voxel

import (
	"testing"

	"burrsearch/internal/vec"
)

func TestGetSetRoundTrip(t *testing.T) {
	g := New(3)
	if g.Get(1, 2, 0) {
		t.Fatal("fresh grid has a set cell")
	}
	g.Set(1, 2, 0, true)
	if !g.Get(1, 2, 0) {
		t.Fatal("Set did not persist")
	}
	if g.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", g.Count())
	}
	g.Set(1, 2, 0, false)
	if g.Get(1, 2, 0) || g.Count() != 0 {
		t.Fatal("clearing a cell did not take effect")
	}
}

func TestToIndexFromIndexRoundTrip(t *testing.T) {
	size := 4
	next := vec.CubeIter(size)
	for v, ok := next(); ok; v, ok = next() {
		idx := ToIndexV(size, v)
		got := FromIndex(size, idx)
		if got != v {
			t.Fatalf("FromIndex(ToIndexV(%v)) = %v", v, got)
		}
	}
}

func TestOverlapAndOrInplace(t *testing.T) {
	a := New(2)
	a.Set(0, 0, 0, true)
	b := New(2)
	b.Set(1, 1, 1, true)
	if a.Overlap(b) {
		t.Fatal("disjoint grids reported overlapping")
	}
	b.Set(0, 0, 0, true)
	if !a.Overlap(b) {
		t.Fatal("grids sharing a cell reported no overlap")
	}

	c := New(2)
	c.Set(0, 0, 0, true)
	c.OrInplace(b)
	if !c.Get(1, 1, 1) || !c.Get(0, 0, 0) {
		t.Fatal("OrInplace did not union all set cells")
	}
}

func TestBoundingBoxEmptyGrid(t *testing.T) {
	g := New(3)
	if _, _, ok := g.BoundingBox(); ok {
		t.Fatal("empty grid reported a bounding box")
	}
}

func TestBoundingBoxSingleCell(t *testing.T) {
	g := New(4)
	g.Set(1, 2, 3, true)
	min, max, ok := g.BoundingBox()
	if !ok {
		t.Fatal("nonempty grid reported no bounding box")
	}
	want := vec.V3{X: 1, Y: 2, Z: 3}
	if min != want || max != want {
		t.Fatalf("bounding box = (%v,%v), want (%v,%v)", min, max, want, want)
	}
}

func TestIsConnected(t *testing.T) {
	connected := New(3)
	connected.Set(0, 0, 0, true)
	connected.Set(1, 0, 0, true)
	connected.Set(2, 0, 0, true)
	if !connected.IsConnected() {
		t.Error("a straight line of adjacent cells was reported disconnected")
	}

	disconnected := New(3)
	disconnected.Set(0, 0, 0, true)
	disconnected.Set(2, 2, 2, true)
	if disconnected.IsConnected() {
		t.Error("two cells with no shared face were reported connected")
	}

	empty := New(3)
	if !empty.IsConnected() {
		t.Error("an empty grid should vacuously be connected")
	}
}

func TestShiftExpand(t *testing.T) {
	g := New(2)
	g.Set(0, 0, 0, true)
	g.Set(1, 0, 0, true)
	expanded := g.ShiftExpand(5, vec.V3{X: 2, Y: 2, Z: 2})
	if !expanded.Get(2, 2, 2) || !expanded.Get(3, 2, 2) {
		t.Fatal("ShiftExpand did not translate the set cells")
	}
	if expanded.Count() != 2 {
		t.Fatalf("ShiftExpand produced %d set cells, want 2", expanded.Count())
	}
}

func TestStringLayout(t *testing.T) {
	g := New(2)
	g.Set(0, 0, 0, true)
	g.Set(1, 1, 1, true)
	text := g.String()

	// String lays out x fastest within a z-run, z varying within a row
	// separated by '|', y varying across rows: exactly the layout
	// puzzle.FromString parses.
	if len(text) == 0 {
		t.Fatal("String produced no output")
	}
	want := "\"x.|..\",\n\"..|.x\",\n"
	if text != want {
		t.Errorf("String() = %q, want %q", text, want)
	}
}
