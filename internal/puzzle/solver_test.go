package puzzle

import (
	"testing"

	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// buildSlabStack returns three 3x3 full-layer slabs stacked at z=0,1,2
// inside a 3-cube, the trivial end-to-end scenario of §8.
func buildSlabStack() *Puzzle {
	n := 3
	pieces := make([]*Piece, 3)
	for i := 0; i < 3; i++ {
		pieces[i] = NewPiece(n)
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				pieces[i].Block.Set(x, y, i, true)
			}
		}
	}
	return &Puzzle{Pieces: pieces, Size: n, Margin: n, Space: n * 5}
}

func TestSlabStackSolves(t *testing.T) {
	p := buildSlabStack()
	if err := p.Check(); err != nil {
		t.Fatalf("slab stack failed validation: %v", err)
	}
	result := p.Solve()
	if !result.Ok {
		t.Fatal("slab stack should be solvable, got Ok = false")
	}

	moves := result.Moves(p)
	assertReplaySound(t, p, moves)

	shrunk := ShrinkMoves(moves)
	removes := 0
	for _, m := range shrunk {
		if m.Kind == MoveRemove {
			removes++
		}
	}
	if removes != 3 {
		t.Errorf("shrunk witness has %d Remove events, want 3", removes)
	}
}

// buildLockedPair returns a two-piece puzzle whose world is exactly as
// large as the assembled cube, so no piece has anywhere to translate:
// a deterministic unsolvable case independent of any particular
// interlocking geometry.
func buildLockedPair() *Puzzle {
	p := Base(2, 2, 0, nil)
	p.Space = p.Size
	p.Margin = 0
	return p
}

func TestLockedPairIsUnsolvable(t *testing.T) {
	p := buildLockedPair()
	result := p.Solve()
	if result.Ok {
		t.Fatal("a puzzle with zero slack to translate in should be unsolvable")
	}
}

// buildInboxPiece returns a 4-cube shell with a straight rod tunneled
// along one edge, the "inner straight piece" scenario of §8. It only
// asserts solvability and soundness here, not the exact shrunk move
// count the original scenario specifies, since that count depends on
// search-order details this reimplementation does not claim to match.
func buildInboxPiece() *Puzzle {
	n := 4
	inner := NewPiece(n)
	outer := NewPiece(n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if y == 0 && z == 0 {
					inner.Block.Set(x, y, z, true)
				} else {
					outer.Block.Set(x, y, z, true)
				}
			}
		}
	}
	return &Puzzle{Pieces: []*Piece{outer, inner}, Size: n, Margin: n, Space: n * 5}
}

func TestInboxPieceSolves(t *testing.T) {
	p := buildInboxPiece()
	if err := p.Check(); err != nil {
		t.Fatalf("inbox puzzle failed validation: %v", err)
	}
	result := p.Solve()
	if !result.Ok {
		t.Fatal("inbox puzzle should be solvable")
	}
	assertReplaySound(t, p, result.Moves(p))
}

func TestSubsetMonotonicityOnSlabStack(t *testing.T) {
	p := buildSlabStack()
	whole := p.SolveWhole(false)
	if !whole.Ok {
		t.Fatal("slab stack should be solvable as a whole")
	}
	for i := 0; i < len(p.Pieces); i++ {
		for j := i + 1; j < len(p.Pieces); j++ {
			sub := p.subsetPuzzle([]int{i, j})
			if !sub.SolveWhole(false).Ok {
				t.Errorf("subset {%d,%d} should be solvable if the whole puzzle is", i, j)
			}
		}
	}
}

// assertReplaySound walks moves from the puzzle's initial configuration,
// applying each Shift and Remove, and fails if any two present pieces
// ever collide or if any piece is left present at the end.
func assertReplaySound(t *testing.T, p *Puzzle, moves []Move) {
	t.Helper()
	n := len(p.Pieces)
	positions := make([]vec.V3I, n)
	present := make([]bool, n)
	for i := range positions {
		positions[i] = vec.V3I{X: p.Margin, Y: p.Margin, Z: p.Margin}
		present[i] = true
	}

	for step, mv := range moves {
		switch mv.Kind {
		case MoveShift:
			for _, i := range mv.Pieces {
				positions[i] = positions[i].Add(mv.Delta)
			}
			cells := voxel.New(p.Space)
			for i := 0; i < n; i++ {
				if !present[i] {
					continue
				}
				pos := positions[i]
				shape := p.Pieces[i].Block.ShiftExpand(p.Space, vec.V3{X: pos.X, Y: pos.Y, Z: pos.Z})
				if cells.Overlap(shape) {
					t.Fatalf("step %d: piece %d collides with another present piece after a Shift", step, i)
				}
				cells.OrInplace(shape)
			}
		case MoveRemove:
			present[mv.Pieces[0]] = false
		}
	}

	for i, ok := range present {
		if ok {
			t.Errorf("piece %d is still present after replaying the full witness", i)
		}
	}
}
