// Package eval implements the pluggable scoring of a solved puzzle: a
// lexicographically-compared tuple of (first-remove-index, ...) values
// that the search driver uses to decide whether a mutation improved on
// a slot's current best.
package eval

import (
	"fmt"

	"burrsearch/internal/puzzle"
)

// Value is a totally ordered evaluation result. Less defines that order;
// String is a human-readable rendering for progress logs; Tag is a
// filename-safe label for artifact naming.
type Value interface {
	Less(other Value) bool
	String() string
	Tag() string
}

// Evaluator scores a solved puzzle.
type Evaluator interface {
	Evaluate(p *puzzle.Puzzle, result *puzzle.SolveResult) Value
}

func firstRemoveIndex(moves []puzzle.ShrinkMove) int {
	for i, m := range moves {
		if m.Kind == puzzle.MoveRemove {
			return i
		}
	}
	panic("eval: no Remove in a shrunk move list of a solved puzzle")
}

// ShrinkStepValue is (FirstRemoveIndex, ShrunkMoveCount, RawMoveCount),
// compared lexicographically in that order.
type ShrinkStepValue struct {
	FirstRemoveIndex int
	ShrunkMoveCount  int
	RawMoveCount     int
}

func (v ShrinkStepValue) Less(other Value) bool {
	o := other.(ShrinkStepValue)
	if v.FirstRemoveIndex != o.FirstRemoveIndex {
		return v.FirstRemoveIndex < o.FirstRemoveIndex
	}
	if v.ShrunkMoveCount != o.ShrunkMoveCount {
		return v.ShrunkMoveCount < o.ShrunkMoveCount
	}
	return v.RawMoveCount < o.RawMoveCount
}

func (v ShrinkStepValue) String() string {
	return fmt.Sprintf("first=%d shrink=%d all=%d", v.FirstRemoveIndex, v.ShrunkMoveCount, v.RawMoveCount)
}

func (v ShrinkStepValue) Tag() string {
	return fmt.Sprintf("F%dS%dA%d", v.FirstRemoveIndex, v.ShrunkMoveCount, v.RawMoveCount)
}

// ShrinkStepEvaluator favors witnesses that delay the first removal and,
// among those, favors longer shrunk (and then raw) move lists.
type ShrinkStepEvaluator struct{}

func (ShrinkStepEvaluator) Evaluate(p *puzzle.Puzzle, result *puzzle.SolveResult) Value {
	moves := result.Moves(p)
	shrunk := puzzle.ShrinkMoves(moves)
	return ShrinkStepValue{
		FirstRemoveIndex: firstRemoveIndex(shrunk),
		ShrunkMoveCount:  len(shrunk),
		RawMoveCount:     len(moves),
	}
}

// DupDropValue is (FirstRemoveIndex, DropScore, ShrunkMoveCount,
// RawMoveCount), compared lexicographically in that order.
type DupDropValue struct {
	FirstRemoveIndex int
	DropScore        int
	ShrunkMoveCount  int
	RawMoveCount     int
}

func (v DupDropValue) Less(other Value) bool {
	o := other.(DupDropValue)
	if v.FirstRemoveIndex != o.FirstRemoveIndex {
		return v.FirstRemoveIndex < o.FirstRemoveIndex
	}
	if v.DropScore != o.DropScore {
		return v.DropScore < o.DropScore
	}
	if v.ShrunkMoveCount != o.ShrunkMoveCount {
		return v.ShrunkMoveCount < o.ShrunkMoveCount
	}
	return v.RawMoveCount < o.RawMoveCount
}

func (v DupDropValue) String() string {
	return fmt.Sprintf("first=%d dup=%d shrink=%d all=%d", v.FirstRemoveIndex, v.DropScore, v.ShrunkMoveCount, v.RawMoveCount)
}

func (v DupDropValue) Tag() string {
	return fmt.Sprintf("F%dD%dS%dA%d", v.FirstRemoveIndex, v.DropScore, v.ShrunkMoveCount, v.RawMoveCount)
}

// dropScore rewards shuffling between removals: for each Remove, it
// accumulates distinctTouched^2 * touchCount, where distinctTouched is
// the number of distinct pieces that appeared in Shift piece-sets since
// the previous Remove and touchCount is the number of such Shift events.
// Both counters reset on every Remove. This is the later of two variants
// known from the source history (§9); see DESIGN.md.
func dropScore(moves []puzzle.ShrinkMove) int {
	score := 0
	touched := map[int]bool{}
	touchCount := 0
	for _, m := range moves {
		switch m.Kind {
		case puzzle.MoveRemove:
			score += len(touched) * len(touched) * touchCount
			touched = map[int]bool{}
			touchCount = 0
		case puzzle.MoveShift:
			for _, p := range m.Pieces {
				touched[p] = true
			}
			touchCount++
		}
	}
	return score
}

// DupDropEvaluator favors witnesses that delay the first removal and, in
// addition, ranks heavier shuffling between removals ahead of witness
// length (longer shrunk, then raw, move lists rank higher).
type DupDropEvaluator struct{}

func (DupDropEvaluator) Evaluate(p *puzzle.Puzzle, result *puzzle.SolveResult) Value {
	moves := result.Moves(p)
	shrunk := puzzle.ShrinkMoves(moves)
	return DupDropValue{
		FirstRemoveIndex: firstRemoveIndex(shrunk),
		DropScore:        dropScore(shrunk),
		ShrunkMoveCount:  len(shrunk),
		RawMoveCount:     len(moves),
	}
}
