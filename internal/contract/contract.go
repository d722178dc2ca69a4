// Package contract defines the JSON wire shapes the core hands off to
// the external HTTP and persistence layers. It carries no transport or
// storage logic of its own — only the document shapes described in §6
// of the specification.
package contract

import (
	"burrsearch/internal/puzzle"
	"burrsearch/internal/vec"
)

// Coord is a single cell or translation, serialized as {"x":..,"y":..,"z":..}.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func coordOf(v vec.V3) Coord   { return Coord{X: v.X, Y: v.Y, Z: v.Z} }
func coordOfI(v vec.V3I) Coord { return Coord{X: v.X, Y: v.Y, Z: v.Z} }

// PieceDocument is one piece's shape as a flat list of its filled cells,
// in local (unpositioned) coordinates.
type PieceDocument struct {
	Blocks []Coord `json:"blocks"`
}

// MoveDocument is one witness step. A nil Translate marks a Remove; a
// non-nil Translate marks a coordinated Shift of Pieces by that delta.
type MoveDocument struct {
	Pieces    []int  `json:"pieces"`
	Translate *Coord `json:"translate"`
}

// SolutionDocument bundles a puzzle's pieces with its witness, the shape
// persisted and served for one solved puzzle.
type SolutionDocument struct {
	Pieces []PieceDocument `json:"pieces"`
	Moves  []MoveDocument  `json:"moves"`
}

// PuzzleDocument is the top-level persisted/served record for one
// puzzle: its canonical code, a display name, the search run that
// produced it, a creation date, and its solution.
type PuzzleDocument struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Run      string           `json:"run"`
	Date     string           `json:"date"`
	Solution SolutionDocument `json:"solution"`
}

// PieceDocumentsOf flattens every piece of p into its local filled-cell
// list.
func PieceDocumentsOf(p *puzzle.Puzzle) []PieceDocument {
	docs := make([]PieceDocument, len(p.Pieces))
	for i, piece := range p.Pieces {
		next := vec.CubeIter(piece.Size)
		for v, ok := next(); ok; v, ok = next() {
			if piece.Block.GetV(v) {
				docs[i].Blocks = append(docs[i].Blocks, coordOf(v))
			}
		}
	}
	return docs
}

// MoveDocumentsOf renders a raw (non-shrunk) witness move list in the
// wire shape, with a nil Translate marking a Remove.
func MoveDocumentsOf(moves []puzzle.Move) []MoveDocument {
	docs := make([]MoveDocument, len(moves))
	for i, m := range moves {
		docs[i].Pieces = m.Pieces
		if m.Kind == puzzle.MoveShift {
			c := coordOfI(m.Delta)
			docs[i].Translate = &c
		}
	}
	return docs
}

// SolutionDocumentOf bundles p's pieces and r's witness into the wire
// shape for a solved puzzle. Calling this with !r.Ok is a programmer
// error, same as Moves itself.
func SolutionDocumentOf(p *puzzle.Puzzle, r *puzzle.SolveResult) SolutionDocument {
	return SolutionDocument{
		Pieces: PieceDocumentsOf(p),
		Moves:  MoveDocumentsOf(r.Moves(p)),
	}
}
