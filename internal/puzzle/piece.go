package puzzle

import "burrsearch/internal/voxel"

// Piece is a connected, nonempty shape inside a local size^3 cube.
type Piece struct {
	Block *voxel.Grid
	Size  int
}

// NewPiece returns an empty piece of the given side length.
func NewPiece(size int) *Piece {
	return &Piece{Block: voxel.New(size), Size: size}
}

// Clone returns an independent copy of p.
func (p *Piece) Clone() *Piece {
	return &Piece{Block: p.Block.Clone(), Size: p.Size}
}

// FromString builds a piece from a text layout where 'X'/'x' marks a
// filled cell, '.' marks an empty cell, and any other rune is a
// non-advancing separator (used for the '|' that divides z-layers within
// a row). Cells are consumed in the order x (fastest), then z, then y,
// matching "layers separated by | vary z, rows vary y, columns vary x".
func FromString(size int, text string) *Piece {
	p := NewPiece(size)
	x, y, z := 0, 0, 0
	for _, c := range text {
		switch c {
		case 'X', 'x':
			p.Block.Set(x, y, z, true)
		case '.':
			p.Block.Set(x, y, z, false)
		default:
			continue
		}
		x++
		if x >= size {
			x = 0
			z++
		}
		if z >= size {
			z = 0
			y++
		}
	}
	return p
}
