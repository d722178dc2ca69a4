// Package blockcode implements the canonical "WHD:P:cells" textual
// encoding of a puzzle's cell-to-piece assignment, used only for
// external deduplication: two puzzles that are rotations and
// piece-relabelings of each other normalize to the same code.
package blockcode

import (
	"fmt"
	"strconv"
	"strings"

	"burrsearch/internal/puzzle"
	"burrsearch/internal/vec"
	"burrsearch/internal/voxel"
)

// Format is a puzzle reduced to its bare cell-to-piece-label grid: Cells
// holds, for every cell in x-fastest/y/z order, the 1-based index of the
// piece occupying it, or 0 for an empty cell.
//
// Each axis of Size and each piece label must fit in a single decimal
// digit (size <= 9, piece count <= 9): the block-code text format spends
// exactly one character per axis and one per cell, matching the puzzles
// this encoding is meant for.
type Format struct {
	Size  vec.V3
	Piece int
	Cells []int
}

func cubeIndex(size vec.V3, x, y, z int) int {
	return voxel.ToIndex(size.X, x, y, z)
}

// FromPuzzle captures p's current cell-to-piece assignment. p must be a
// cube (Size x Size x Size); every burrsearch puzzle is.
func FromPuzzle(p *puzzle.Puzzle) *Format {
	n := p.Size
	cells := make([]int, n*n*n)
	next := vec.CubeIter(n)
	for v, ok := next(); ok; v, ok = next() {
		idx := cubeIndex(vec.V3{X: n, Y: n, Z: n}, v.X, v.Y, v.Z)
		for i, piece := range p.Pieces {
			if piece.Block.GetV(v) {
				cells[idx] = i + 1
			}
		}
	}
	return &Format{Size: vec.V3{X: n, Y: n, Z: n}, Piece: len(p.Pieces), Cells: cells}
}

// ToPuzzle rebuilds a bare assembled puzzle (Space = Size*4, no reach
// limit) from the cell grid, the inverse of FromPuzzle up to the
// puzzle's Space/ReachLimit/Multi fields, which a block code does not
// carry.
func (f *Format) ToPuzzle() *puzzle.Puzzle {
	n := f.Size.X
	pieces := make([]*puzzle.Piece, f.Piece)
	for i := range pieces {
		pieces[i] = puzzle.NewPiece(n)
	}
	for i, label := range f.Cells {
		if label == 0 {
			continue
		}
		v := voxel.FromIndex(n, i)
		pieces[label-1].Block.SetV(v, true)
	}
	return &puzzle.Puzzle{Pieces: pieces, Size: n, Margin: n, Space: n * 4}
}

// ToBlockCode renders the canonical "WHD:P:cells" text form.
func (f *Format) ToBlockCode() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d%d%d:%d:", f.Size.X, f.Size.Y, f.Size.Z, f.Piece)
	for _, label := range f.Cells {
		sb.WriteString(strconv.Itoa(label))
	}
	return sb.String()
}

// FromBlockCode parses the "WHD:P:cells" text form produced by
// ToBlockCode.
func FromBlockCode(code string) *Format {
	parts := strings.SplitN(code, ":", 3)
	sizeDigits := parts[0]
	size := vec.V3{
		X: int(sizeDigits[0] - '0'),
		Y: int(sizeDigits[1] - '0'),
		Z: int(sizeDigits[2] - '0'),
	}
	piece, err := strconv.Atoi(parts[1])
	if err != nil {
		panic("blockcode: invalid piece count in block code: " + code)
	}
	cells := make([]int, len(parts[2]))
	for i := 0; i < len(parts[2]); i++ {
		cells[i] = int(parts[2][i] - '0')
	}
	return &Format{Size: size, Piece: piece, Cells: cells}
}

// rotateSpace permutes cell contents spatially by m, leaving piece
// labels untouched.
func (f *Format) rotateSpace(m matrix) *Format {
	out := &Format{Size: f.Size, Piece: f.Piece, Cells: make([]int, len(f.Cells))}
	next := vec.CubeIter(f.Size.X)
	for v, ok := next(); ok; v, ok = next() {
		nx, ny, nz := m.apply(v.X, v.Y, v.Z)
		from := cubeIndex(f.Size, v.X, v.Y, v.Z)
		to := cubeIndex(f.Size, nx, ny, nz)
		out.Cells[to] = f.Cells[from]
	}
	return out
}

// relabel remaps every cell's piece label through index (index[0] must
// be 0; index[k] is the new label for old label k).
func (f *Format) relabel(index []int) *Format {
	out := &Format{Size: f.Size, Piece: f.Piece, Cells: make([]int, len(f.Cells))}
	for i, label := range f.Cells {
		out.Cells[i] = index[label]
	}
	return out
}

// permutations returns every permutation of 1..=n as independent slices.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i + 1
	}
	var out [][]int
	used := make([]bool, n+1)
	cur := make([]int, 0, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			perm := make([]int, n)
			copy(perm, cur)
			out = append(out, perm)
			return
		}
		for _, e := range elems {
			if used[e] {
				continue
			}
			used[e] = true
			cur = append(cur, e)
			rec()
			cur = cur[:len(cur)-1]
			used[e] = false
		}
	}
	rec()
	return out
}

// variants returns every rotation-and-relabeling of f: one entry per
// (piece-label permutation, cube rotation) pair.
func (f *Format) variants() []*Format {
	var out []*Format
	for _, perm := range permutations(f.Piece) {
		index := make([]int, f.Piece+1)
		index[0] = 0
		copy(index[1:], perm)
		relabeled := f.relabel(index)
		for _, m := range rotAll(f.Size.X) {
			out = append(out, relabeled.rotateSpace(m))
		}
	}
	return out
}

// Normalize returns the lexicographically smallest block code among all
// of f's rotation-and-relabeling variants, the canonical form used for
// deduplication.
func (f *Format) Normalize() *Format {
	best := f
	bestCode := f.ToBlockCode()
	for _, v := range f.variants() {
		if code := v.ToBlockCode(); code < bestCode {
			best, bestCode = v, code
		}
	}
	return best
}

// IsConnected reports whether every piece in f's implied puzzle is
// connected.
func (f *Format) IsConnected() bool {
	p := f.ToPuzzle()
	for _, piece := range p.Pieces {
		if !piece.Block.IsConnected() {
			return false
		}
	}
	return true
}

// IsNoEmpty reports whether every piece in f's implied puzzle is
// nonempty.
func (f *Format) IsNoEmpty() bool {
	p := f.ToPuzzle()
	for _, piece := range p.Pieces {
		if piece.Block.Count() == 0 {
			return false
		}
	}
	return true
}
