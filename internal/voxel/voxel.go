// Package voxel implements the dense bitset cube ("Cells" in the original
// source) that every piece shape and collision test is built on.
package voxel

import (
	"math/bits"
	"strings"

	"burrsearch/internal/vec"
)

// Grid is a dense size^3 bitset, indexed x + y*size + z*size*size.
type Grid struct {
	bits []uint64
	size int
}

// New returns an empty grid of the given side length.
func New(size int) *Grid {
	n := size * size * size
	return &Grid{bits: make([]uint64, (n+63)/64), size: size}
}

// Size returns the grid's side length.
func (g *Grid) Size() int { return g.size }

func index(size, x, y, z int) int { return x + y*size + z*size*size }

// ToIndex converts a coordinate to its linear index for a grid of the
// given side length.
func ToIndex(size, x, y, z int) int { return index(size, x, y, z) }

// ToIndexV is ToIndex taking a vec.V3.
func ToIndexV(size int, v vec.V3) int { return index(size, v.X, v.Y, v.Z) }

// FromIndex is the inverse of ToIndex.
func FromIndex(size, idx int) vec.V3 {
	x := idx % size
	y := (idx / size) % size
	z := idx / size / size
	return vec.V3{X: x, Y: y, Z: z}
}

// Get reports whether (x,y,z) is set.
func (g *Grid) Get(x, y, z int) bool {
	i := index(g.size, x, y, z)
	return g.bits[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// GetV is Get taking a vec.V3.
func (g *Grid) GetV(v vec.V3) bool { return g.Get(v.X, v.Y, v.Z) }

// Set assigns (x,y,z).
func (g *Grid) Set(x, y, z int, value bool) {
	i := index(g.size, x, y, z)
	mask := uint64(1) << uint(i%64)
	if value {
		g.bits[i/64] |= mask
	} else {
		g.bits[i/64] &^= mask
	}
}

// SetV is Set taking a vec.V3.
func (g *Grid) SetV(v vec.V3, value bool) { g.Set(v.X, v.Y, v.Z, value) }

// Count returns the population count (number of set cells).
func (g *Grid) Count() int {
	n := 0
	for _, w := range g.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// OrInplace unions other into g. Both grids must share the same size.
func (g *Grid) OrInplace(other *Grid) {
	for i, w := range other.bits {
		g.bits[i] |= w
	}
}

// AndInplace intersects g with other. Both grids must share the same size.
func (g *Grid) AndInplace(other *Grid) {
	for i, w := range other.bits {
		g.bits[i] &= w
	}
}

// Overlap reports whether g and other share any set cell.
func (g *Grid) Overlap(other *Grid) bool {
	for i, w := range other.bits {
		if g.bits[i]&w != 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := make([]uint64, len(g.bits))
	copy(cp, g.bits)
	return &Grid{bits: cp, size: g.size}
}

// BoundingBox returns the minimum and maximum coordinate containing a set
// cell. ok is false for an empty grid, in which case min/max are
// unspecified; callers must never ask a grid they have not already
// confirmed is nonempty.
func (g *Grid) BoundingBox() (min, max vec.V3, ok bool) {
	min = vec.V3{X: g.size, Y: g.size, Z: g.size}
	max = vec.V3{X: -1, Y: -1, Z: -1}
	found := false
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			for z := 0; z < g.size; z++ {
				if !g.Get(x, y, z) {
					continue
				}
				found = true
				if x < min.X {
					min.X = x
				}
				if y < min.Y {
					min.Y = y
				}
				if z < min.Z {
					min.Z = z
				}
				if x > max.X {
					max.X = x
				}
				if y > max.Y {
					max.Y = y
				}
				if z > max.Z {
					max.Z = z
				}
			}
		}
	}
	return min, max, found
}

// Boxed returns a new grid with every cell inside g's bounding box set,
// regardless of whether that cell was itself set in g. Calling it on an
// empty grid is a programmer error.
func (g *Grid) Boxed() *Grid {
	min, max, ok := g.BoundingBox()
	if !ok {
		panic("voxel: Boxed called on an empty grid")
	}
	out := New(g.size)
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				out.Set(x, y, z, true)
			}
		}
	}
	return out
}

// IsConnected reports whether the set cells form a single 6-connected
// component, by flood-filling from the first set cell in lexicographic
// (x-fastest) order and comparing the visited count to the population.
func (g *Grid) IsConnected() bool {
	var start vec.V3
	found := false
	next := vec.CubeIter(g.size)
	for v, ok := next(); ok; v, ok = next() {
		if g.GetV(v) {
			start = v
			found = true
			break
		}
	}
	if !found {
		return true
	}
	visited := New(g.size)
	queue := []vec.V3{start}
	visited.SetV(start, true)
	count := 0
	outer := vec.Cube(g.size)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, d := range vec.D6 {
			n, ok := vec.SignedOf(cur).Add(d).IntoV3In(outer)
			if !ok {
				continue
			}
			if visited.GetV(n) || !g.GetV(n) {
				continue
			}
			visited.SetV(n, true)
			queue = append(queue, n)
		}
	}
	return count == g.Count()
}

// ShiftExpand returns a grid of side space whose set cells are g's set
// cells translated by shift. The caller guarantees every translated cell
// still lies within [0, space).
func (g *Grid) ShiftExpand(space int, shift vec.V3) *Grid {
	out := New(space)
	next := vec.CubeIter(g.size)
	for d, ok := next(); ok; d, ok = next() {
		if !g.GetV(d) {
			continue
		}
		p := d.Add(shift)
		out.SetV(p, true)
	}
	return out
}

// String renders the grid as one quoted row per y-layer, z varying within
// a row separated by '|', matching the layout FromString parses.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		sb.WriteByte('"')
		for z := 0; z < g.size; z++ {
			for x := 0; x < g.size; x++ {
				if g.Get(x, y, z) {
					sb.WriteByte('x')
				} else {
					sb.WriteByte('.')
				}
			}
			if z < g.size-1 {
				sb.WriteByte('|')
			}
		}
		sb.WriteString("\",\n")
	}
	return sb.String()
}
