package puzzle

import (
	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// MoveKind distinguishes a coordinated translation from an extraction.
type MoveKind int

const (
	MoveShift MoveKind = iota
	MoveRemove
)

// Move is one step of a witness: either Shift{Pieces, Delta}, a
// simultaneous translation of every piece in Pieces by Delta, or
// Remove{Pieces: [piece]}, marking that piece's extraction from the
// position implied by Delta.
type Move struct {
	Kind   MoveKind
	Pieces []int
	Delta  vec.V3I
}

// ShrinkMove is the run-length-coalesced form of a move list: consecutive
// Shifts carrying the same piece-set are folded into one entry with
// multiple Deltas. Remove entries pass through unchanged and break any
// run, matching the invariant shrink(shrink(M)) == shrink(M).
type ShrinkMove struct {
	Kind   MoveKind
	Pieces []int
	Deltas []vec.V3I
}

func samePieceSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Moves reconstructs the chronological move list witnessing that p was
// solved, by walking the predecessor chain from the terminal state back
// to the initial state. Calling this on a result with Ok == false is a
// programmer error.
func (r *SolveResult) Moves(p *Puzzle) []Move {
	if !r.Ok {
		panic("puzzle: Moves called on an unsolved result")
	}
	var moves []Move
	end := r.endState
	init := p.initState()

	for end.Key() != init.Key() {
		prev, ok := r.reached[end.Key()]
		if !ok {
			panic("puzzle: predecessor map missing an entry on the witness path")
		}

		var shiftedPieces []int
		var shiftDelta vec.V3I
		for i := range end.Pos {
			prevPos := prev.Pos[i]
			if prevPos < 0 {
				continue
			}
			prevWorld := voxel.FromIndex(p.Space, prevPos)
			px := vec.SignedOf(prevWorld).Sub(prev.Shift)

			curPos := end.Pos[i]
			if curPos < 0 {
				moves = append(moves, Move{Kind: MoveRemove, Pieces: []int{i}, Delta: px})
				continue
			}
			curWorld := voxel.FromIndex(p.Space, curPos)
			cx := vec.SignedOf(curWorld).Sub(end.Shift)
			if cx == px {
				continue
			}
			shiftedPieces = append(shiftedPieces, i)
			if shiftDelta == (vec.V3I{}) {
				shiftDelta = cx.Sub(px)
			}
		}
		if len(shiftedPieces) > 0 {
			moves = append(moves, Move{Kind: MoveShift, Pieces: shiftedPieces, Delta: shiftDelta})
		}
		end = prev
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// ShrinkMoves coalesces consecutive Shift moves that carry the same
// piece-set into a single ShrinkMove with multiple Deltas.
func ShrinkMoves(moves []Move) []ShrinkMove {
	if len(moves) == 0 {
		return nil
	}
	out := make([]ShrinkMove, 0, len(moves))
	push := func(m Move) {
		out = append(out, ShrinkMove{Kind: m.Kind, Pieces: m.Pieces, Deltas: []vec.V3I{m.Delta}})
	}
	push(moves[0])
	for _, m := range moves[1:] {
		last := &out[len(out)-1]
		if m.Kind == MoveShift && last.Kind == MoveShift && samePieceSet(m.Pieces, last.Pieces) {
			last.Deltas = append(last.Deltas, m.Delta)
			continue
		}
		push(m)
	}
	return out
}
