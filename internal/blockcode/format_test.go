package blockcode

import (
	"testing"

	"burrsearch/internal/vec"
)

func sampleFormat() *Format {
	return &Format{
		Size:  vec.V3{X: 2, Y: 2, Z: 2},
		Piece: 2,
		Cells: []int{0, 1, 0, 0, 0, 2, 0, 0},
	}
}

func TestToBlockCode(t *testing.T) {
	f := sampleFormat()
	if got := f.ToBlockCode(); got != "222:2:01000200" {
		t.Errorf("ToBlockCode() = %q, want %q", got, "222:2:01000200")
	}
}

func TestFromBlockCodeRoundTrip(t *testing.T) {
	code := "222:2:01000200"
	f := FromBlockCode(code)
	if f.Size != (vec.V3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Size = %v, want (2,2,2)", f.Size)
	}
	if f.Piece != 2 {
		t.Errorf("Piece = %d, want 2", f.Piece)
	}
	want := []int{0, 1, 0, 0, 0, 2, 0, 0}
	if len(f.Cells) != len(want) {
		t.Fatalf("Cells = %v, want %v", f.Cells, want)
	}
	for i := range want {
		if f.Cells[i] != want[i] {
			t.Fatalf("Cells = %v, want %v", f.Cells, want)
		}
	}
	if got := f.ToBlockCode(); got != code {
		t.Errorf("round trip produced %q, want %q", got, code)
	}
}

func TestVariantsCount(t *testing.T) {
	f := sampleFormat()
	variants := f.variants()
	if len(variants) != 48 {
		t.Fatalf("got %d variants, want 48 (24 rotations x 2 label permutations)", len(variants))
	}
}

func TestNormalizeCanonicalCode(t *testing.T) {
	f := sampleFormat()
	canonical := f.Normalize().ToBlockCode()
	if canonical != "222:2:00000012" {
		t.Errorf("Normalize().ToBlockCode() = %q, want %q", canonical, "222:2:00000012")
	}
}

func TestFromPuzzleToPuzzleRoundTrip(t *testing.T) {
	f := sampleFormat()
	p := f.ToPuzzle()
	if len(p.Pieces) != 2 {
		t.Fatalf("ToPuzzle produced %d pieces, want 2", len(p.Pieces))
	}
	back := FromPuzzle(p)
	if back.ToBlockCode() != f.ToBlockCode() {
		t.Errorf("FromPuzzle(ToPuzzle(f)) = %q, want %q", back.ToBlockCode(), f.ToBlockCode())
	}
}

func TestIsConnectedAndIsNoEmpty(t *testing.T) {
	f := sampleFormat()
	if !f.IsNoEmpty() {
		t.Error("sample format's pieces should both be nonempty")
	}
	if !f.IsConnected() {
		t.Error("sample format's pieces should both be connected (single cells)")
	}

	empty := &Format{Size: vec.V3{X: 2, Y: 2, Z: 2}, Piece: 2, Cells: []int{0, 0, 0, 0, 0, 0, 0, 0}}
	if empty.IsNoEmpty() {
		t.Error("a format with no cells for piece 1 or 2 should report an empty piece")
	}
}

func TestRotAllProduces24Rotations(t *testing.T) {
	rots := rotAll(2)
	if len(rots) != 24 {
		t.Fatalf("rotAll(2) produced %d rotations, want 24", len(rots))
	}
	rots4 := rotAll(4)
	if len(rots4) != 24 {
		t.Fatalf("rotAll(4) produced %d rotations, want 24", len(rots4))
	}
}
