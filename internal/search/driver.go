// Package search implements the parallel hill-climbing driver that turns
// a Generator and an Evaluator into a stream of progressively better
// puzzles: independent worker lanes, each owning a private Searcher and
// a private random source, mutate and re-solve a bank of candidate slots
// and report whichever slot survives.
package search

import (
	"math/rand"
	"sync"

	"burrsearch/internal/eval"
	"burrsearch/internal/generator"
	"burrsearch/internal/puzzle"
)

// Found is one accepted candidate sent from a worker lane to the
// consumer: the puzzle, its solve witness, and its score.
type Found struct {
	Puzzle *puzzle.Puzzle
	Result *puzzle.SolveResult
	Value  eval.Value
}

// slot is one candidate lane of the hill-climbing bank: the puzzle
// currently held there, its best score so far, and how many consecutive
// mutations have failed to improve on it.
type slot struct {
	puzzle     *puzzle.Puzzle
	result     *puzzle.SolveResult
	value      eval.Value
	stagnation int
}

// Searcher owns everything one worker lane needs to hill-climb
// independently of every other lane: a generator, an evaluator, and the
// puzzle parameters are shared read-only state; the random source and
// slot bank are private to the lane.
type Searcher struct {
	Gen    generator.Generator
	Eval   eval.Evaluator
	Tries  int
	GiveUp int
	Stack  int
}

// Run hill-climbs from start for up to s.Tries rounds across a bank of
// s.Stack independent slots, seeded identically from start, and returns
// the best slot reached. A mutation scoring at least as well as a slot's
// current best is adopted (lateral moves are accepted to traverse
// plateaus), but the stagnation counter only resets on strict
// improvement. If any slot's stagnation counter exceeds s.GiveUp, the
// best slot across the whole bank is returned immediately, without
// waiting out the remaining rounds.
func (s *Searcher) Run(start *puzzle.Puzzle, rng *rand.Rand) *Found {
	slots := make([]*slot, s.Stack)
	for i := range slots {
		slots[i] = s.seed(start)
	}

	for round := 0; round < s.Tries; round++ {
		for i, sl := range slots {
			if sl == nil {
				continue
			}
			candidate := s.Gen.Generate(sl.puzzle, rng)
			result := candidate.Solve()
			if !result.Ok {
				sl.stagnation++
			} else {
				value := s.Eval.Evaluate(candidate, result)
				if sl.value == nil || !value.Less(sl.value) {
					if sl.value == nil || sl.value.Less(value) {
						sl.stagnation = 0
					} else {
						sl.stagnation++
					}
					sl.puzzle, sl.result, sl.value = candidate, result, value
				} else {
					sl.stagnation++
				}
			}
			if sl.stagnation > s.GiveUp {
				return toFound(bestOf(slots))
			}
			slots[i] = sl
		}
	}

	return toFound(bestOf(slots))
}

// seed solves start once to give a slot an initial score to improve on;
// if start is unsolvable the slot starts with no score.
func (s *Searcher) seed(start *puzzle.Puzzle) *slot {
	result := start.Solve()
	sl := &slot{puzzle: start}
	if result.Ok {
		sl.result = result
		sl.value = s.Eval.Evaluate(start, result)
	}
	return sl
}

func bestOf(slots []*slot) *slot {
	var best *slot
	for _, sl := range slots {
		if sl == nil || sl.value == nil {
			continue
		}
		if best == nil || best.value.Less(sl.value) {
			best = sl
		}
	}
	return best
}

func toFound(sl *slot) *Found {
	if sl == nil || sl.value == nil {
		return nil
	}
	return &Found{Puzzle: sl.puzzle, Result: sl.result, Value: sl.value}
}

// RunParallel spawns lanes independent worker goroutines, each running
// its own Searcher.Run from an independently-seeded *rand.Rand. Lanes
// communicate only by adding their result to a shared best-first queue;
// nothing else is shared between them. seed is used only to derive each
// lane's private random source, never shared. The returned slice is in
// best-first order.
func RunParallel(s Searcher, start *puzzle.Puzzle, lanes int, seed int64) []*Found {
	queue := newFoundQueue()
	var wg sync.WaitGroup
	wg.Add(lanes)
	for lane := 0; lane < lanes; lane++ {
		rng := rand.New(rand.NewSource(seed + int64(lane)))
		go func() {
			defer wg.Done()
			queue.add(s.Run(start, rng))
		}()
	}
	wg.Wait()
	queue.close()

	return queue.drainAll()
}

// Best returns the highest-scoring of a batch of lane results (in the
// order RunParallel returns, or any order), or nil if the batch is
// empty.
func Best(found []*Found) *Found {
	var best *Found
	for _, f := range found {
		if f == nil {
			continue
		}
		if best == nil || best.Value.Less(f.Value) {
			best = f
		}
	}
	return best
}
