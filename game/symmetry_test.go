package game_test

import (
	"testing"

	"github.com/katalvlaran/grundy/builder"
	"github.com/katalvlaran/grundy/game"
)

// mustBuildOne builds a connected family position or fails the test.
func mustBuildOne(t *testing.T, b builder.Builder) game.Position {
	t.Helper()
	p, err := b.BuildOne()
	if err != nil {
		t.Fatalf("BuildOne: %v", err)
	}
	return p
}

// TestFindSymmetry_KnownPositive: families with an obvious mirror.
func TestFindSymmetry_KnownPositive(t *testing.T) {
	cases := []struct {
		name string
		b    builder.Builder
	}{
		{"rect(4,8)", builder.Rect(4, 8)},
		{"cube(2,2)", builder.HyperCube(2, 2)},
		{"cube(2,4)", builder.HyperCube(2, 4)},
		{"cube(4,2)", builder.HyperCube(4, 2)},
		{"cube(7,2)", builder.HyperCube(7, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustBuildOne(t, tc.b)
			if _, ok := p.FindSymmetry(); !ok {
				t.Errorf("%s: expected an involution", tc.name)
			}
		})
	}
}

// TestFindSymmetry_KnownNegative: families without one.
func TestFindSymmetry_KnownNegative(t *testing.T) {
	cases := []struct {
		name string
		b    builder.Builder
	}{
		{"cube(2,7)", builder.HyperCube(2, 7)},
		{"cube(3,3)", builder.HyperCube(3, 3)},
		{"rect(3,3)", builder.Rect(3, 3)},
		{"tetrahedron(15)", builder.HyperTetrahedron(15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustBuildOne(t, tc.b)
			if _, ok := p.FindSymmetry(); ok {
				t.Errorf("%s: expected no involution", tc.name)
			}
		})
	}
}

// TestFindSymmetry_InvolutionProperties: the returned pairing is a
// fixed-point-free involution that never maps within an edge and maps
// neighborhoods onto neighborhoods.
func TestFindSymmetry_InvolutionProperties(t *testing.T) {
	p := mustBuildOne(t, builder.Rect(2, 2))
	sigma, ok := p.FindSymmetry()
	if !ok {
		t.Fatal("rect(2,2) should have a symmetry")
	}
	if len(sigma) != p.NumNodes() {
		t.Fatalf("pairing covers %d vertices; want %d", len(sigma), p.NumNodes())
	}
	for v, m := range sigma {
		if m == v {
			t.Errorf("vertex %d is a fixed point", v)
		}
		if sigma[m] != v {
			t.Errorf("pairing is not an involution at %d↔%d", v, m)
		}
	}
	for _, e := range p.Graph().Edges() {
		for _, v := range e.Values() {
			if e.Contains(sigma[v]) {
				t.Errorf("σ maps vertex %d to %d inside the same edge", v, sigma[v])
			}
		}
	}
	// σ(e) must itself be an edge of the position.
	for _, e := range p.Graph().Edges() {
		img := p.Graph().NewSet()
		for _, v := range e.Values() {
			img.Insert(sigma[v])
		}
		found := false
		for _, f := range p.Graph().Edges() {
			if img.Equal(f) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("image of edge %v under σ is not an edge", e.Values())
		}
	}
}

// TestFindSymmetry_ParityRejections: odd counts fail fast.
func TestFindSymmetry_ParityRejections(t *testing.T) {
	// Odd vertex count.
	p := mustBuildOne(t, builder.Heap(3))
	if _, ok := p.FindSymmetry(); ok {
		t.Error("heap(3): odd token count cannot pair up")
	}
	// Even vertices, odd edge count.
	positions, err := game.FromEdges([][]int{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("got %d components; want 1", len(positions))
	}
	if _, ok := positions[0].FindSymmetry(); ok {
		t.Error("kayles(4): three edges cannot pair up")
	}
}
