// Package game: the Position façade over hypergraph.Hypergraph.
package game

import (
	"github.com/katalvlaran/grundy/hypergraph"
	"github.com/katalvlaran/grundy/vset"
)

// Position is one connected canonical taking game. The zero Position
// is not valid; obtain Positions from FromEdges, FromEdgesWithLabels,
// or Remove. Positions are immutable and cheap to copy — the struct
// holds one pointer to a shared canonical hypergraph.
type Position struct {
	g *hypergraph.Hypergraph
}

// FromEdges builds the connected canonical positions described by a
// raw hyperedge list. See hypergraph.FromEdges for errors and options.
func FromEdges(edges [][]int, opts ...hypergraph.Option) ([]Position, error) {
	graphs, err := hypergraph.FromEdges(edges, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(graphs), nil
}

// FromEdgesWithLabels is FromEdges with caller-supplied vertex labels.
func FromEdgesWithLabels(edges [][]int, labels []int, opts ...hypergraph.Option) ([]Position, error) {
	graphs, err := hypergraph.FromEdgesWithLabels(edges, labels, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(graphs), nil
}

func wrap(graphs []*hypergraph.Hypergraph) []Position {
	out := make([]Position, 0, len(graphs))
	for _, g := range graphs {
		out = append(out, Position{g: g})
	}
	return out
}

// Graph exposes the underlying canonical hypergraph (read-only).
func (p Position) Graph() *hypergraph.Hypergraph { return p.g }

// NumNodes returns the number of tokens. Complexity: O(1).
func (p Position) NumNodes() int { return p.g.NumNodes() }

// Nodes returns the original label of each canonical vertex index.
func (p Position) Nodes() []int { return p.g.Nodes() }

// Key returns the canonical encoding; equal keys mean equal positions
// and therefore equal nimbers. Complexity: O(1).
func (p Position) Key() string { return p.g.Key() }

// Equal reports canonical equality. Complexity: O(len(key)).
func (p Position) Equal(other Position) bool { return p.g.Equal(other.g) }

// String renders the underlying hypergraph.
func (p Position) String() string { return p.g.String() }

// Remove deletes the given canonical vertex indices from the position
// and returns the connected canonical components that remain. Removing
// nothing returns the position itself (re-canonicalized); removing
// everything returns no components.
func (p Position) Remove(vertices ...int) []Position {
	return p.removeSet(p.g.NewSet(vertices...))
}

// removeSet is Remove for an already-built vertex set.
func (p Position) removeSet(remove vset.Set) []Position {
	return wrap(p.g.Minus(remove))
}

// MaxNimber returns a non-strict upper bound on the position's nimber:
// 0 when a mirror symmetry exists, otherwise the token count.
// Complexity: the symmetry search (worst-case exponential, heavily
// pruned by partitions).
func (p Position) MaxNimber() int {
	if _, ok := p.FindSymmetry(); ok {
		return 0
	}
	return p.g.NumNodes()
}
