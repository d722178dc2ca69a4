package puzzle

import (
	"container/heap"
	"log"

	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// SolveResult is the outcome of Solve or SolveWhole. When Ok is false the
// remaining fields are meaningless; Moves and ShrinkMoves should not be
// called. When Ok is true the result holds one witness found by the
// priority-ordered search (fewest present pieces first): a witness, not
// necessarily a shortest one.
type SolveResult struct {
	Ok       bool
	Step     int
	reached  map[string]State // state key -> predecessor state (full, with Shift)
	endState State
}

// frontierEntry is one item of the search frontier: a state together with
// the BFS step at which it was discovered, used only to break ties
// between states with the same present-piece count.
type frontierEntry struct {
	state State
	step  int
}

type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	pi, pj := h[i].state.PresentCount(), h[j].state.PresentCount()
	if pi != pj {
		return pi < pj
	}
	return h[i].step < h[j].step
}
func (h frontierHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Solve first checks every 2-piece subset of the puzzle in isolation; if
// any subset cannot be solved on its own, the whole puzzle is declared
// unsolvable without running the full search (invariant 5, §8). Otherwise
// it runs SolveWhole on the whole puzzle.
func (p *Puzzle) Solve() *SolveResult {
	n := len(p.Pieces)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sub := p.subsetPuzzle([]int{i, j})
			result := sub.SolveWhole(false)
			if !result.Ok {
				log.Printf("burrsearch: subset {%d,%d} has no solution, skipping full search", i, j)
				return &SolveResult{Ok: false}
			}
		}
	}
	return p.SolveWhole(true)
}

// SolveWhole runs the priority-ordered BFS over the whole puzzle as given,
// without the 2-piece precheck.
func (p *Puzzle) SolveWhole(logProgress bool) *SolveResult {
	reached := make(map[string]State)
	frontier := &frontierHeap{}
	heap.Init(frontier)
	heap.Push(frontier, frontierEntry{state: p.initState(), step: 0})

	for frontier.Len() > 0 {
		entry := heap.Pop(frontier).(frontierEntry)
		state, step := entry.state, entry.step

		if state.isSolved() {
			if logProgress {
				log.Printf("burrsearch: solved, reached=%d step=%d", len(reached), step)
			}
			return &SolveResult{Ok: true, Step: step, reached: reached, endState: state}
		}
		if p.ReachLimit != nil && len(reached) >= *p.ReachLimit {
			if logProgress {
				log.Printf("burrsearch: reach limit %d hit at step=%d", *p.ReachLimit, step)
			}
			break
		}

		for _, next := range p.nextStates(state) {
			key := next.Key()
			if _, ok := reached[key]; ok {
				continue
			}
			reached[key] = state

			reduced := p.removePieces(next)
			candidate := reduced
			if reduced.Key() != key {
				reducedKey := reduced.Key()
				if _, ok := reached[reducedKey]; ok {
					continue
				}
				reached[reducedKey] = next
			} else {
				candidate = next
			}
			heap.Push(frontier, frontierEntry{state: candidate, step: step + 1})
		}
	}

	if logProgress {
		log.Printf("burrsearch: exhausted frontier, no solution (reached=%d)", len(reached))
	}
	return &SolveResult{Ok: false}
}

// nextStates enumerates every successor of state: for each move-group of
// currently-present pieces, for each of the six axis directions in the
// fixed order, for each increasing positive distance until the group
// leaves the world or collides.
func (p *Puzzle) nextStates(state State) []State {
	var out []State

	available := make([]int, 0, len(state.Pos))
	for i, pos := range state.Pos {
		if pos >= 0 {
			available = append(available, i)
		}
	}

	groups := p.moveGroups(available)
	bound := vec.Cube(p.Space - p.Size - p.Margin)

	for group, ok := groups(); ok; group, ok = groups() {
		for _, d := range vec.D6 {
		distance:
			for s := 1; s < p.Space; s++ {
				next := state.Clone()
				for _, i := range group {
					cur := voxel.FromIndex(p.Space, state.Pos[i])
					moved, inBounds := vec.SignedOf(cur).Add(d.Mul(s)).IntoV3In(bound)
					if !inBounds {
						break distance
					}
					next.Pos[i] = voxel.ToIndexV(p.Space, moved)
				}
				if p.collides(next) {
					break distance
				}
				out = append(out, p.normalizeState(next))
			}
		}
	}
	return out
}

// pieceWorldShape returns piece i's shape translated to its world
// position in state, or nil if the piece has been removed.
func (p *Puzzle) pieceWorldShape(state State, i int) *voxel.Grid {
	if state.Pos[i] < 0 {
		return nil
	}
	return p.Pieces[i].Block.ShiftExpand(p.Space, voxel.FromIndex(p.Space, state.Pos[i]))
}

// collides reports whether any two present pieces' world-space shapes
// overlap in state.
func (p *Puzzle) collides(state State) bool {
	cells := voxel.New(p.Space)
	for i := range p.Pieces {
		shape := p.pieceWorldShape(state, i)
		if shape == nil {
			continue
		}
		if cells.Overlap(shape) {
			return true
		}
		cells.OrInplace(shape)
	}
	return false
}

// worldAABB returns piece i's axis-aligned bounding box in world
// coordinates, given its position in state, plus ok=false if removed.
func (p *Puzzle) worldAABB(state State, i int) (min, max vec.V3, ok bool) {
	if state.Pos[i] < 0 {
		return vec.V3{}, vec.V3{}, false
	}
	localMin, localMax, found := p.Pieces[i].Block.BoundingBox()
	if !found {
		panic("puzzle: piece has no set cells")
	}
	pos := voxel.FromIndex(p.Space, state.Pos[i])
	return pos.Add(localMin), pos.Add(localMax), true
}

func aabbOverlap(aMin, aMax, bMin, bMax vec.V3) bool {
	return aMin.X <= bMax.X && bMin.X <= aMax.X &&
		aMin.Y <= bMax.Y && bMin.Y <= aMax.Y &&
		aMin.Z <= bMax.Z && bMin.Z <= aMax.Z
}

// removePieces implements the removal reduction: any present piece whose
// bounding box overlaps no other present piece's bounding box is marked
// removed. All removals are computed against the same pre-reduction
// snapshot of boxes; this is a single pass, not a cascade.
func (p *Puzzle) removePieces(state State) State {
	n := len(state.Pos)
	mins := make([]vec.V3, n)
	maxs := make([]vec.V3, n)
	present := make([]bool, n)
	for i := range state.Pos {
		min, max, ok := p.worldAABB(state, i)
		if ok {
			mins[i], maxs[i], present[i] = min, max, true
		}
	}

	result := state.Clone()
	for k := 0; k < n; k++ {
		if !present[k] {
			continue
		}
		blocked := false
		for j := 0; j < n; j++ {
			if j == k || !present[j] {
				continue
			}
			if aabbOverlap(mins[k], maxs[k], mins[j], maxs[j]) {
				blocked = true
				break
			}
		}
		if !blocked {
			result.Pos[k] = -1
		}
	}
	return result
}

// normalizeState shifts every present piece's position so that the
// minimum corner of the assembly's world bounding box sits at Margin on
// each axis, skipping any axis on which that shift would push the
// assembly's maximum corner outside the world. The cumulative shift is
// recorded in state.Shift.
func (p *Puzzle) normalizeState(state State) State {
	state = state.Clone()
	minB := vec.V3{X: p.Space, Y: p.Space, Z: p.Space}
	maxB := vec.V3{X: 0, Y: 0, Z: 0}
	any := false
	for i := range p.Pieces {
		min, max, ok := p.worldAABB(state, i)
		if !ok {
			continue
		}
		any = true
		if min.X < minB.X {
			minB.X = min.X
		}
		if min.Y < minB.Y {
			minB.Y = min.Y
		}
		if min.Z < minB.Z {
			minB.Z = min.Z
		}
		if max.X > maxB.X {
			maxB.X = max.X
		}
		if max.Y > maxB.Y {
			maxB.Y = max.Y
		}
		if max.Z > maxB.Z {
			maxB.Z = max.Z
		}
	}
	if !any {
		return state
	}

	shift := vec.V3I{X: p.Margin - minB.X, Y: p.Margin - minB.Y, Z: p.Margin - minB.Z}
	if maxB.X+shift.X >= p.Space {
		shift.X = 0
	}
	if maxB.Y+shift.Y >= p.Space {
		shift.Y = 0
	}
	if maxB.Z+shift.Z >= p.Space {
		shift.Z = 0
	}
	if shift == (vec.V3I{}) {
		return state
	}

	for i := range p.Pieces {
		if state.Pos[i] < 0 {
			continue
		}
		cur := voxel.FromIndex(p.Space, state.Pos[i])
		moved := vec.SignedOf(cur).Add(shift)
		if moved.X < 0 || moved.Y < 0 || moved.Z < 0 ||
			moved.X >= p.Space || moved.Y >= p.Space || moved.Z >= p.Space {
			panic("puzzle: normalization pushed a piece out of the world")
		}
		state.Pos[i] = voxel.ToIndex(p.Space, moved.X, moved.Y, moved.Z)
	}
	state.Shift = state.Shift.Add(shift)
	return state
}
