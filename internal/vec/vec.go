// Package vec implements the unsigned and signed 3-vectors used throughout
// the puzzle core, along with lexicographic cube iteration and lazy
// k-subset enumeration over a set of indices.
package vec

// V3 is an unsigned (always non-negative) grid coordinate.
type V3 struct {
	X, Y, Z int
}

// V3I is a signed displacement or difference between two V3 values.
type V3I struct {
	X, Y, Z int
}

// Cube returns V3{n, n, n}.
func Cube(n int) V3 { return V3{n, n, n} }

func (a V3) Add(b V3) V3 { return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a V3) Sub(b V3) V3 { return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a V3) Mul(s int) V3 { return V3{a.X * s, a.Y * s, a.Z * s} }

func (a V3I) Add(b V3I) V3I { return V3I{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a V3I) Sub(b V3I) V3I { return V3I{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a V3I) Mul(s int) V3I { return V3I{a.X * s, a.Y * s, a.Z * s} }

// SignedOf widens an unsigned coordinate to a signed one.
func SignedOf(v V3) V3I { return V3I{v.X, v.Y, v.Z} }

// IntoV3In converts a signed vector into an unsigned one bounded by outer,
// i.e. every component of the result lies in [0, outer.component). Returns
// ok=false if any component of v is negative or out of range.
func (v V3I) IntoV3In(outer V3) (V3, bool) {
	if v.X < 0 || v.Y < 0 || v.Z < 0 {
		return V3{}, false
	}
	if v.X >= outer.X || v.Y >= outer.Y || v.Z >= outer.Z {
		return V3{}, false
	}
	return V3{v.X, v.Y, v.Z}, true
}

// D6 enumerates the six axis-aligned unit directions in the fixed order
// +x, -x, +y, -y, +z, -z. Successor generation and witness reconstruction
// both depend on this exact order for reproducibility.
var D6 = [6]V3I{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// CubeIter lazily yields every V3 in [0,n)^3 in x-fastest, then y, then z
// order. Each call to next returns the next coordinate and true, or the
// zero value and false once exhausted.
func CubeIter(n int) (next func() (V3, bool)) {
	x, y, z := 0, 0, 0
	return func() (V3, bool) {
		if z >= n {
			return V3{}, false
		}
		cur := V3{x, y, z}
		x++
		if x >= n {
			x = 0
			y++
			if y >= n {
				y = 0
				z++
			}
		}
		return cur, true
	}
}

// Subsets lazily enumerates every subset of content with size 1..=take,
// in ascending size then lexicographic order within a size, mirroring
// itertools::combinations chained over k=1..=take. It is implemented as a
// closure-based iterator rather than a materialized slice of subsets,
// since the reference implementation's eager version is a measured hot
// spot in the successor-generation loop.
func Subsets(content []int, take int) (next func() ([]int, bool)) {
	n := len(content)
	if take > n {
		take = n
	}
	if take < 0 {
		take = 0
	}
	k := 1
	idx := make([]int, 0)
	started := false

	advance := func() bool {
		for {
			if k > take {
				return false
			}
			if !started {
				started = true
				idx = make([]int, k)
				for i := range idx {
					idx[i] = i
				}
				return true
			}
			// advance idx to the next combination of size k within [0,n)
			i := k - 1
			for i >= 0 && idx[i] == i+n-k {
				i--
			}
			if i < 0 {
				k++
				started = false
				continue
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}

	return func() ([]int, bool) {
		if n == 0 || take == 0 {
			return nil, false
		}
		if !advance() {
			return nil, false
		}
		out := make([]int, k)
		for i, v := range idx {
			out[i] = content[v]
		}
		return out, true
	}
}
