package game_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grundy/builder"
	"github.com/katalvlaran/grundy/game"
	"github.com/katalvlaran/grundy/hypergraph"
)

// TestFromEdges_ErrorsPassThrough: construction errors surface with
// their hypergraph sentinels intact.
func TestFromEdges_ErrorsPassThrough(t *testing.T) {
	_, err := game.FromEdges([][]int{{0, 200}})
	assert.True(t, errors.Is(err, hypergraph.ErrTooLarge))

	_, err = game.FromEdgesWithLabels([][]int{{0, 3}}, []int{1})
	assert.True(t, errors.Is(err, hypergraph.ErrIllConfigured))
}

// TestPosition_Equality: isomorphic positions are equal, distinct ones
// are not, and copies share the canonical key.
func TestPosition_Equality(t *testing.T) {
	a, err := game.FromEdges([][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	b, err := game.FromEdges([][]int{{5, 9}, {9, 7}})
	require.NoError(t, err)
	c, err := game.FromEdges([][]int{{0, 1, 2}})
	require.NoError(t, err)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	require.Len(t, c, 1)

	assert.True(t, a[0].Equal(b[0]))
	assert.Equal(t, a[0].Key(), b[0].Key())
	assert.False(t, a[0].Equal(c[0]))

	clone := a[0]
	assert.True(t, clone.Equal(a[0]))
}

// TestMaxNimber: 0 under symmetry, the token count otherwise.
func TestMaxNimber(t *testing.T) {
	symmetric, err := builder.Rect(2, 2).BuildOne()
	require.NoError(t, err)
	assert.Equal(t, 0, symmetric.MaxNimber())

	heap, err := builder.Heap(5).BuildOne()
	require.NoError(t, err)
	assert.Equal(t, 5, heap.MaxNimber())
}

// TestPosition_Labels: labels survive the façade round trip.
func TestPosition_Labels(t *testing.T) {
	positions, err := game.FromEdgesWithLabels([][]int{{0, 1}}, []int{41, 42})
	require.NoError(t, err)
	require.Len(t, positions, 1)
	labels := append([]int(nil), positions[0].Nodes()...)
	assert.ElementsMatch(t, []int{41, 42}, labels)
}
