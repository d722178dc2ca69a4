package blockcode

import "sync"

// matrix is a 4x4 integer affine transform in homogeneous coordinates,
// comparable so it can dedupe directly as a map key.
type matrix [4][4]int

func identityMatrix() matrix {
	var m matrix
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

func (a matrix) mul(b matrix) matrix {
	var out matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// apply transforms (x,y,z), panicking if the result has a negative
// component (a rotation of a cube of the matrix's own side never
// produces one; a mismatched size would).
func (a matrix) apply(x, y, z int) (int, int, int) {
	in := [4]int{x, y, z, 1}
	var out [4]int
	for j := 0; j < 4; j++ {
		sum := 0
		for i := 0; i < 4; i++ {
			sum += in[i] * a[i][j]
		}
		out[j] = sum
	}
	if out[0] < 0 || out[1] < 0 || out[2] < 0 {
		panic("blockcode: rotation produced a negative coordinate")
	}
	return out[0], out[1], out[2]
}

func rotX(size int) matrix {
	return matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, -1, 0, 0},
		{0, size - 1, 0, 1},
	}
}

func rotY(size int) matrix {
	return matrix{
		{0, 0, -1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, size - 1, 1},
	}
}

func rotZ(size int) matrix {
	return matrix{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{size - 1, 0, 0, 1},
	}
}

var (
	rotAllMu    sync.Mutex
	rotAllCache = map[int][]matrix{}
)

// rotAll returns the 24 rotations of a cube of the given side length,
// generated by composing rotX/rotY/rotZ and deduplicating. Cached per
// size since every caller for a given puzzle size asks for the same set.
func rotAll(size int) []matrix {
	rotAllMu.Lock()
	defer rotAllMu.Unlock()
	if cached, ok := rotAllCache[size]; ok {
		return cached
	}

	seen := map[matrix]bool{}
	rx := identityMatrix()
	for i := 0; i < 4; i++ {
		ry := rx
		for j := 0; j < 4; j++ {
			rz := ry
			for k := 0; k < 4; k++ {
				seen[rz] = true
				rz = rz.mul(rotZ(size))
			}
			ry = ry.mul(rotY(size))
		}
		rx = rx.mul(rotX(size))
	}

	out := make([]matrix, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	if len(out) != 24 {
		panic("blockcode: rotation group generation did not produce 24 elements")
	}
	rotAllCache[size] = out
	return out
}
