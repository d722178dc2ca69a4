// Package generator implements the random cell-swap mutation used by the
// search driver to explore nearby candidate puzzles, plus a small chain
// of composable validity constraints.
package generator

import (
	"math/rand"

	"burrsearch/internal/puzzle"
)

// Constraint is an additional predicate a mutated piece list must satisfy
// beyond "every piece stays connected and nonempty", which the generator
// always enforces itself.
type Constraint interface {
	Check(pieces []*puzzle.Piece) bool
}

// MinPieceSizeConstraint rejects a mutation if any piece drops below Size
// cells. Next chains an additional constraint ("and" composition); a nil
// Next means this is the end of the chain.
type MinPieceSizeConstraint struct {
	Size int
	Next Constraint
}

func (c *MinPieceSizeConstraint) Check(pieces []*puzzle.Piece) bool {
	for _, p := range pieces {
		if p.Block.Count() < c.Size {
			return false
		}
	}
	if c.Next == nil {
		return true
	}
	return c.Next.Check(pieces)
}

// Terminal always accepts; it is the identity element of the constraint
// chain and a convenient Next for a chain with nothing further to check.
type Terminal struct{}

func (Terminal) Check(pieces []*puzzle.Piece) bool { return true }

// Generator mutates a puzzle into a neighbouring candidate.
type Generator interface {
	Generate(p *puzzle.Puzzle, rng *rand.Rand) *puzzle.Puzzle
}

// SwapPuzzleGenerator performs a single-cell mutation: either moving one
// occupied cell from its current piece to a different piece, or relocating
// an occupied cell within its own piece to a different empty cell. It
// retries from a fresh clone of the input until the result keeps every
// piece connected and nonempty and satisfies Extra (if set).
type SwapPuzzleGenerator struct {
	Extra Constraint
}

func (g SwapPuzzleGenerator) Generate(p *puzzle.Puzzle, rng *rand.Rand) *puzzle.Puzzle {
	for {
		out := p.Clone()
		if g.mutateOnce(out, rng) && g.valid(out.Pieces) {
			return out
		}
	}
}

// mutateOnce applies the single swap, reporting whether it managed to
// find a cell to move. It reports false for a puzzle with fewer than two
// pieces, and when the drawn target cell is empty but the randomly drawn
// source cell is not occupied by the randomly chosen piece; Generate then
// retries.
func (g SwapPuzzleGenerator) mutateOnce(p *puzzle.Puzzle, rng *rand.Rand) bool {
	if len(p.Pieces) < 2 {
		return false
	}
	x, y, z := rng.Intn(p.Size), rng.Intn(p.Size), rng.Intn(p.Size)

	for a, piece := range p.Pieces {
		if !piece.Block.Get(x, y, z) {
			continue
		}
		piece.Block.Set(x, y, z, false)
		b := (a + 1 + rng.Intn(len(p.Pieces)-1)) % len(p.Pieces)
		p.Pieces[b].Block.Set(x, y, z, true)
		return true
	}

	// (x,y,z) is empty: relocate an occupied cell of a random piece there.
	a := rng.Intn(len(p.Pieces))
	nx, ny, nz := rng.Intn(p.Size), rng.Intn(p.Size), rng.Intn(p.Size)
	if !p.Pieces[a].Block.Get(nx, ny, nz) {
		return false
	}
	p.Pieces[a].Block.Set(x, y, z, true)
	p.Pieces[a].Block.Set(nx, ny, nz, false)
	return true
}

func (g SwapPuzzleGenerator) valid(pieces []*puzzle.Piece) bool {
	for _, piece := range pieces {
		if piece.Block.Count() == 0 || !piece.Block.IsConnected() {
			return false
		}
	}
	if g.Extra == nil {
		return true
	}
	return g.Extra.Check(pieces)
}

// SwapNPuzzleGenerator composes Swaps independent single-cell mutations
// from a base SwapPuzzleGenerator.
type SwapNPuzzleGenerator struct {
	Base  SwapPuzzleGenerator
	Swaps int
}

func (g SwapNPuzzleGenerator) Generate(p *puzzle.Puzzle, rng *rand.Rand) *puzzle.Puzzle {
	out := p
	for i := 0; i < g.Swaps; i++ {
		out = g.Base.Generate(out, rng)
	}
	return out
}
