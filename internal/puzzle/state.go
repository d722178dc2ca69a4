package puzzle

import (
	"strconv"
	"strings"

	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// State is a per-piece optional world position plus a cumulative
// translation applied by pose normalization. Pos[i] is -1 if piece i has
// been removed, otherwise the world-space linear index of its position.
//
// Shift is reconstruction metadata only: it is never consulted by Key,
// so two states that differ solely by a global translation collapse
// into the same frontier entry. See the design note on state identity
// vs. translation.
type State struct {
	Pos   []int
	Shift vec.V3I
}

// Key returns a string uniquely determined by Pos (and only Pos),
// suitable as a map key for frontier deduplication.
func (s State) Key() string {
	var sb strings.Builder
	for i, p := range s.Pos {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

// PresentCount returns the number of pieces still present.
func (s State) PresentCount() int {
	n := 0
	for _, p := range s.Pos {
		if p >= 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	pos := make([]int, len(s.Pos))
	copy(pos, s.Pos)
	return State{Pos: pos, Shift: s.Shift}
}

// initState returns the all-pieces-assembled starting state.
func (p *Puzzle) initState() State {
	origin := p.Margin
	pos := voxel.ToIndex(p.Space, origin, origin, origin)
	s := State{Pos: make([]int, len(p.Pieces))}
	for i := range s.Pos {
		s.Pos[i] = pos
	}
	return s
}

func (s State) isSolved() bool {
	for _, p := range s.Pos {
		if p >= 0 {
			return false
		}
	}
	return true
}
