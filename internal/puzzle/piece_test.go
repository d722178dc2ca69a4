package puzzle

import "testing"

func TestFromStringParsesInCellOrder(t *testing.T) {
	p := FromString(2, "XX....XX")
	cases := []struct {
		x, y, z int
		want    bool
	}{
		{0, 0, 0, true},
		{1, 0, 0, true},
		{0, 0, 1, false},
		{1, 0, 1, false},
		{0, 1, 0, false},
		{1, 1, 0, false},
		{0, 1, 1, true},
		{1, 1, 1, true},
	}
	for _, c := range cases {
		if got := p.Block.Get(c.x, c.y, c.z); got != c.want {
			t.Errorf("Get(%d,%d,%d) = %v, want %v", c.x, c.y, c.z, got, c.want)
		}
	}
	if p.Block.Count() != 4 {
		t.Errorf("Count() = %d, want 4", p.Block.Count())
	}
}

func TestFromStringIgnoresSeparators(t *testing.T) {
	a := FromString(2, "XX....XX")
	b := FromString(2, "XX|..|..|XX")
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				if a.Block.Get(x, y, z) != b.Block.Get(x, y, z) {
					t.Fatalf("separators changed parsed contents at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}

func TestPieceClone(t *testing.T) {
	p := FromString(2, "XX....XX")
	clone := p.Clone()
	clone.Block.Set(0, 0, 1, true)
	if p.Block.Get(0, 0, 1) {
		t.Error("mutating a clone's block affected the original")
	}
}
