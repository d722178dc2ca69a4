package puzzle

import "testing"

func TestBaseConservationAndConnectivity(t *testing.T) {
	cases := []struct{ n, k, holes int }{
		{3, 4, 5},
		{2, 2, 0},
		{4, 3, 2},
		{3, 1, 0},
	}
	for _, c := range cases {
		p := Base(c.n, c.k, c.holes, nil)
		if len(p.Pieces) != c.k {
			t.Fatalf("Base(%d,%d,%d): got %d pieces, want %d", c.n, c.k, c.holes, len(p.Pieces), c.k)
		}
		total := 0
		for i, piece := range p.Pieces {
			if piece.Block.Count() == 0 {
				t.Errorf("Base(%d,%d,%d): piece %d is empty", c.n, c.k, c.holes, i)
			}
			if !piece.Block.IsConnected() {
				t.Errorf("Base(%d,%d,%d): piece %d is not connected", c.n, c.k, c.holes, i)
			}
			total += piece.Block.Count()
		}
		want := c.n*c.n*c.n - c.holes
		if total != want {
			t.Errorf("Base(%d,%d,%d): total population %d, want %d", c.n, c.k, c.holes, total, want)
		}
		if err := p.Check(); err != nil {
			t.Errorf("Base(%d,%d,%d): Check() = %v", c.n, c.k, c.holes, err)
		}
	}
}

func TestCheckDetectsEmptyPiece(t *testing.T) {
	p := &Puzzle{Size: 2, Margin: 2, Space: 10, Pieces: []*Piece{
		NewPiece(2),
		FromString(2, "XX....XX"),
	}}
	if err := p.Check(); err == nil {
		t.Fatal("Check() accepted a puzzle with an empty piece")
	}
}

func TestCheckDetectsDisconnectedPiece(t *testing.T) {
	disjoint := NewPiece(2)
	disjoint.Block.Set(0, 0, 0, true)
	disjoint.Block.Set(1, 1, 1, true)
	p := &Puzzle{Size: 2, Margin: 2, Space: 10, Pieces: []*Piece{disjoint}}
	if err := p.Check(); err == nil {
		t.Fatal("Check() accepted a disconnected piece")
	}
}

func TestCheckDetectsOverlap(t *testing.T) {
	a := FromString(2, "XX......")
	b := FromString(2, "XXXX....")
	p := &Puzzle{Size: 2, Margin: 2, Space: 10, Pieces: []*Piece{a, b}}
	if err := p.Check(); err == nil {
		t.Fatal("Check() accepted overlapping pieces")
	}
}
