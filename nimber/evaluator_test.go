package nimber_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grundy/builder"
	"github.com/katalvlaran/grundy/game"
	"github.com/katalvlaran/grundy/nimber"
)

// nimberOf evaluates one family position.
func nimberOf(t *testing.T, e *nimber.Evaluator, b builder.Builder) int {
	t.Helper()
	p, err := b.BuildOne()
	require.NoError(t, err)
	n, err := e.Nimber(p)
	require.NoError(t, err)
	return n
}

// TestNimber_Unit: a single token is a win by taking it.
func TestNimber_Unit(t *testing.T) {
	assert.Equal(t, 1, nimberOf(t, nimber.New(), builder.Unit()))
}

// TestNimber_Heaps: a Nim heap of k tokens has nimber k.
func TestNimber_Heaps(t *testing.T) {
	eval := nimber.New()
	for _, k := range []int{1, 3, 4, 100, 101} {
		assert.Equal(t, k, nimberOf(t, eval, builder.Heap(k)), "heap(%d)", k)
	}
}

// TestNimber_HeapCacheExact: evaluating heaps 1..100 memoizes exactly
// one entry per heap, and re-evaluation adds none.
func TestNimber_HeapCacheExact(t *testing.T) {
	eval := nimber.New()
	for k := 1; k <= 100; k++ {
		require.Equal(t, k, nimberOf(t, eval, builder.Heap(k)))
	}
	require.Equal(t, 100, eval.CacheSize())

	for k := 1; k <= 100; k++ {
		require.Equal(t, k, nimberOf(t, eval, builder.Heap(k)))
	}
	assert.Equal(t, 100, eval.CacheSize(), "second pass must be pure cache hits")
}

// TestNimber_Kayles: reference values for Kayles chains.
func TestNimber_Kayles(t *testing.T) {
	expected := [][2]int{
		{1, 1}, {2, 2}, {3, 3}, {4, 1}, {5, 4},
		{7, 2}, {8, 1}, {9, 4}, {10, 2}, {15, 7},
	}
	eval := nimber.New()
	for _, kv := range expected {
		assert.Equal(t, kv[1], nimberOf(t, eval, builder.Kayles(kv[0])), "kayles(%d)", kv[0])
	}
}

// TestNimber_Squares: square grids are second-player wins.
func TestNimber_Squares(t *testing.T) {
	eval := nimber.New()
	for side := 2; side <= 6; side++ {
		if side == 5 && testing.Short() {
			continue // 5×5 has no mirror and needs the full search
		}
		assert.Equal(t, 0, nimberOf(t, eval, builder.Rect(side, side)), "rect(%d,%d)", side, side)
	}
}

// TestNimber_Families: mixed reference values.
func TestNimber_Families(t *testing.T) {
	eval := nimber.New()
	assert.Equal(t, 0, nimberOf(t, eval, builder.HyperCube(2, 4)))
	assert.Equal(t, 10, nimberOf(t, eval, builder.Rect(1, 10)))
	assert.Equal(t, 0, nimberOf(t, eval, builder.HyperCube(2, 3)))
	assert.Equal(t, 1, nimberOf(t, eval, builder.Kayles(40)))
	assert.Equal(t, 2, nimberOf(t, eval, builder.HyperTetrahedron(10)))
	assert.Equal(t, 0, nimberOf(t, eval, builder.HyperCuboid(2, 2, 3)))
	assert.Equal(t, 0, nimberOf(t, eval, builder.Triangle(4)))
}

// TestNimber_OverlappingHeaps: two 8-token heaps glued on one shared
// token behave like a 15-token heap.
func TestNimber_OverlappingHeaps(t *testing.T) {
	positions, err := game.FromEdges([][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0, 8, 9, 10, 11, 12, 13, 14},
	})
	require.NoError(t, err)
	require.Len(t, positions, 1)

	n, err := nimber.New().Nimber(positions[0])
	require.NoError(t, err)
	assert.Equal(t, 15, n)
}

// TestNimberOfComponents_XOR: independent components compose by XOR.
func TestNimberOfComponents_XOR(t *testing.T) {
	eval := nimber.New()

	parts, err := builder.Heap(16).Sum(builder.Heap(8).Sum(builder.Heap(7))).Build()
	require.NoError(t, err)
	n, err := eval.NimberOfComponents(parts)
	require.NoError(t, err)
	assert.Equal(t, 31, n)

	// The empty state is a loss for the player to move.
	n, err = eval.NimberOfComponents(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestNimber_SplitOnRemoval: [[0,2],[1,2]] minus the shared token is
// two unit heaps; 1 XOR 1 = 0.
func TestNimber_SplitOnRemoval(t *testing.T) {
	positions, err := game.FromEdges([][]int{{0, 2}, {1, 2}})
	require.NoError(t, err)
	require.Len(t, positions, 1)
	p := positions[0]

	shared := -1
	for i, label := range p.Nodes() {
		if label == 2 {
			shared = i
		}
	}
	require.GreaterOrEqual(t, shared, 0)

	comps := p.Remove(shared)
	require.Len(t, comps, 2)

	eval := nimber.New()
	for _, c := range comps {
		n, err := eval.Nimber(c)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
	n, err := eval.NimberOfComponents(comps)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestNimber_SymmetryImpliesZero: every position with an involution
// evaluates to 0.
func TestNimber_SymmetryImpliesZero(t *testing.T) {
	eval := nimber.New()
	for _, b := range []builder.Builder{
		builder.Rect(2, 2),
		builder.Rect(4, 4),
		builder.HyperCube(3, 2),
	} {
		p, err := b.BuildOne()
		require.NoError(t, err)
		if _, ok := p.FindSymmetry(); !ok {
			t.Fatal("fixture lost its symmetry")
		}
		n, err := eval.Nimber(p)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}
}

// TestNimber_MexSoundness: the L-shape nimber equals the mex over its
// representative successors, computed independently.
func TestNimber_MexSoundness(t *testing.T) {
	positions, err := game.FromEdges([][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	p := positions[0]

	eval := nimber.New()
	seen := map[int]bool{}
	for _, successor := range p.SplitMoves() {
		n, err := eval.NimberOfComponents(successor)
		require.NoError(t, err)
		seen[n] = true
	}
	mex := 0
	for seen[mex] {
		mex++
	}

	n, err := nimber.New().Nimber(p)
	require.NoError(t, err)
	assert.Equal(t, mex, n)
}

// TestNimber_Determinism: repeated queries return the same value and
// leave the cache size unchanged.
func TestNimber_Determinism(t *testing.T) {
	eval := nimber.New()
	first := nimberOf(t, eval, builder.Kayles(12))
	size := eval.CacheSize()
	second := nimberOf(t, eval, builder.Kayles(12))
	assert.Equal(t, first, second)
	assert.Equal(t, size, eval.CacheSize())
}

// TestNimber_Cancellation: a fired flag surfaces ErrCancelled, and a
// fresh evaluator is unaffected by another evaluator's flag.
func TestNimber_Cancellation(t *testing.T) {
	eval := nimber.New()
	eval.CancelFlag().Cancel()

	p, err := builder.Heap(4).BuildOne()
	require.NoError(t, err)
	_, err = eval.Nimber(p)
	assert.True(t, errors.Is(err, nimber.ErrCancelled))

	_, err = eval.NimberOfComponents([]game.Position{p})
	assert.True(t, errors.Is(err, nimber.ErrCancelled))

	// Cancellation is per-evaluator.
	n, err := nimber.New().Nimber(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// TestNimber_KnownGames: the reference fixture list checks out.
func TestNimber_KnownGames(t *testing.T) {
	if testing.Short() {
		t.Skip("full fixture sweep includes asymmetric grids")
	}
	eval := nimber.New()
	for _, k := range builder.KnownGames() {
		n, err := eval.NimberOfComponents(k.Parts)
		require.NoError(t, err, k.Name)
		assert.True(t, k.CheckNimber(n), "%s: nimber %d fails expectation", k.Name, n)
		assert.True(t, k.CheckSymmetry(), "%s: symmetry expectation fails", k.Name)
	}
}
