package puzzle

import (
	"fmt"

	"github.com/pkg/errors"

	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// Puzzle is an ordered, disjoint collection of pieces assembled in a
// world of side Space. Piece order is piece identity: every index used
// elsewhere (moves, evaluators, constraints) refers back into Pieces.
type Puzzle struct {
	Pieces []*Piece
	// Size is the side length of each piece's local cube.
	Size int
	// Space is the side length of the world the pieces translate in
	// during extraction.
	Space int
	// Margin is the coordinate, equal to Size, at which every piece's
	// local origin sits in the assembled state.
	Margin int
	// ReachLimit optionally bounds the number of states admitted to the
	// solver's frontier before it gives up. Nil means unbounded.
	ReachLimit *int
	// Multi optionally bounds how many pieces may translate together in
	// a single move. Nil means up to P-2 pieces when P > 2 pieces are
	// present, and a single piece otherwise.
	Multi *int
}

// Clone returns a puzzle with independently-cloned pieces and the same
// scalar parameters.
func (p *Puzzle) Clone() *Puzzle {
	pieces := make([]*Piece, len(p.Pieces))
	for i, piece := range p.Pieces {
		pieces[i] = piece.Clone()
	}
	return &Puzzle{
		Pieces:     pieces,
		Size:       p.Size,
		Space:      p.Space,
		Margin:     p.Margin,
		ReachLimit: p.ReachLimit,
		Multi:      p.Multi,
	}
}

// Base constructs a canonical starting puzzle of side n with k pieces,
// optionally omitting the first holes cells of a serpentine traversal
// order that keeps every piece connected by construction.
func Base(n, k, holes int, limit *int) *Puzzle {
	pieces := make([]*Piece, k)
	for i := range pieces {
		pieces[i] = NewPiece(n)
	}
	capacity := (n*n*n - holes + k - 1) / k
	next := vec.CubeIter(n)
	for v, ok := next(); ok; v, ok = next() {
		x, y, z := v.X, v.Y, v.Z
		py := y
		if z%2 != 0 {
			py = n - y - 1
		}
		px := x
		if (py+z*n)%2 != 0 {
			px = n - x - 1
		}
		serpentine := (z*n+py)*n + px
		if serpentine < holes {
			continue
		}
		i := (serpentine - holes) / capacity
		if i >= k {
			i = k - 1
		}
		pieces[i].Block.Set(x, y, z, true)
	}
	return &Puzzle{
		Pieces:     pieces,
		Size:       n,
		Margin:     n,
		Space:      n * 5,
		ReachLimit: limit,
	}
}

// Check validates that every piece is nonempty and connected, and that
// no two pieces overlap when all are placed at the local origin. It
// returns the first violation found, wrapped with github.com/pkg/errors,
// or nil.
func (p *Puzzle) Check() error {
	for i, piece := range p.Pieces {
		if piece.Block.Count() == 0 {
			return errors.Errorf("piece %d is empty", i)
		}
		if !piece.Block.IsConnected() {
			return errors.Errorf("piece %d is not connected", i)
		}
	}
	cells := voxel.New(p.Size)
	for i, piece := range p.Pieces {
		if cells.Overlap(piece.Block) {
			return errors.Errorf("piece %d overlaps an earlier piece", i)
		}
		cells.OrInplace(piece.Block)
	}
	return nil
}

// String renders each piece's block layout, for diagnostics.
func (p *Puzzle) String() string {
	s := ""
	for i, piece := range p.Pieces {
		s += fmt.Sprintf("#%d\n%s\n", i, piece.Block.String())
	}
	return s
}

// subsetPuzzle returns a new puzzle containing only the pieces at the
// given indices, in that order, sharing size/space/margin/reach-limit
// but with Multi reset (a subset puzzle is only ever used for the
// 2-piece solvability precheck, which never needs grouped moves).
func (p *Puzzle) subsetPuzzle(indexes []int) *Puzzle {
	pieces := make([]*Piece, len(indexes))
	for i, idx := range indexes {
		pieces[i] = p.Pieces[idx]
	}
	return &Puzzle{
		Pieces:     pieces,
		Size:       p.Size,
		Space:      p.Space,
		Margin:     p.Margin,
		ReachLimit: p.ReachLimit,
	}
}

// groupSizeLimit returns the maximum move-group size for a state with the
// given number of present pieces: Multi when it is set, otherwise the
// (P-2) heuristic (with a floor of 1) described in §9 of the specification.
func (p *Puzzle) groupSizeLimit(present int) int {
	if p.Multi != nil {
		return *p.Multi
	}
	if present <= 2 {
		return 1
	}
	return present - 2
}

// moveGroups lazily enumerates every nonempty subset of available (piece
// indices currently present) with size up to the puzzle's group size
// limit for that many present pieces.
func (p *Puzzle) moveGroups(available []int) (next func() ([]int, bool)) {
	take := p.groupSizeLimit(len(available))
	return vec.Subsets(available, take)
}
