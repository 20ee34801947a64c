// Package builder: constructors and combinators over hyperedge lists.
package builder

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/katalvlaran/grundy/game"
	"github.com/katalvlaran/grundy/hypergraph"
)

// ErrEmptyBuild is returned by BuildOne when construction leaves no
// position (every edge was empty or the builder had no vertices).
var ErrEmptyBuild = errors.New("builder: build produced no positions")

// Builder accumulates a raw hyperedge list. The zero value has no
// edges; all constructors below are the intended entry points.
type Builder struct {
	edges [][]int
}

// FromEdges wraps an existing hyperedge list. The list is copied, so
// the caller keeps ownership of its slices.
func FromEdges(edges [][]int) Builder {
	return Builder{edges: copyEdges(edges)}
}

// Empty returns a builder holding one empty edge: a game with no
// tokens and no moves.
func Empty() Builder {
	return Builder{edges: [][]int{{}}}
}

// Unit returns a builder holding a single one-token edge.
func Unit() Builder {
	return Builder{edges: [][]int{{0}}}
}

// Heap returns the Nim heap of the given size: one edge over all
// tokens, so a move removes any non-empty subset.
func Heap(size int) Builder {
	edge := make([]int, size)
	for i := range edge {
		edge[i] = i
	}
	return Builder{edges: [][]int{edge}}
}

// Kayles returns the Kayles chain of the given size: adjacent tokens
// pairwise linked, so a move removes one pin or two neighbors.
// Size 0 is Empty and size 1 is Unit.
func Kayles(size int) Builder {
	if size == 0 {
		return Empty()
	}
	if size == 1 {
		return Unit()
	}
	edges := make([][]int, 0, size-1)
	for i := 1; i < size; i++ {
		edges = append(edges, []int{i - 1, i})
	}
	return Builder{edges: edges}
}

// Triangle returns a triangular grid of side l with one edge per line
// in each of the three directions.
func Triangle(l int) Builder {
	var edges [][]int
	for i := 0; i < l; i++ {
		var h1, h2, h3 []int
		for j := 0; j < l-i; j++ {
			// Row-major triangular layout:
			//	12  #  #  #
			//	 8  9  #  #
			//	 4  5  6  #
			//	 0  1  2  3
			h1 = append(h1, i+j*l)
			h2 = append(h2, j+i*l)
			h3 = append(h3, l-1-i+j*(l-1))
		}
		edges = append(edges, h1, h2, h3)
	}
	return Builder{edges: edges}
}

// Rect returns the x-by-y grid: every row and every column is one
// hyperedge.
func Rect(x, y int) Builder {
	return HyperCuboid(x, y)
}

// HyperCube returns the cube of the given dimension with side l along
// every axis.
func HyperCube(dim, l int) Builder {
	lengths := make([]int, dim)
	for i := range lengths {
		lengths[i] = l
	}
	return HyperCuboid(lengths...)
}

// HyperCuboid returns the cuboid with the given side lengths, built by
// repeatedly extruding a unit game along each axis. Any zero length
// collapses to Empty.
func HyperCuboid(lengths ...int) Builder {
	for _, l := range lengths {
		if l == 0 {
			return Empty()
		}
	}
	b := Unit()
	for _, l := range lengths {
		b = b.Extrude(l)
	}
	return b
}

// HyperTetrahedron returns the simplex of the given dimension:
// starting from a unit, each step fully connects one new token to
// every existing token.
func HyperTetrahedron(dim int) Builder {
	b := Unit()
	for i := 0; i < dim; i++ {
		b = b.ConnectUnitToAll()
	}
	return b
}

// Random returns a hypergraph with edgeCount edges over nodeCount
// tokens; each token joins between minPer (inclusive) and maxPer
// (exclusive) randomly chosen edges. Deterministic for a fixed r.
// Degenerate parameters (no edges, or maxPer ≤ minPer) yield Empty.
func Random(r *rand.Rand, nodeCount, edgeCount, minPer, maxPer int) Builder {
	if edgeCount <= 0 || minPer < 0 || maxPer <= minPer {
		return Empty()
	}
	edges := make([][]int, edgeCount)
	for node := 0; node < nodeCount; node++ {
		times := minPer + r.Intn(maxPer-minPer)
		for i := 0; i < times; i++ {
			e := r.Intn(edgeCount)
			edges[e] = append(edges[e], node)
		}
	}
	return Builder{edges: edges}
}

// Edges returns a copy of the accumulated hyperedge list.
func (b Builder) Edges() [][]int { return copyEdges(b.edges) }

// Nodes returns the sorted, duplicate-free list of vertex indices used
// by the edges.
func (b Builder) Nodes() []int {
	var nodes []int
	seen := make(map[int]bool)
	for _, e := range b.edges {
		for _, v := range e {
			if !seen[v] {
				seen[v] = true
				nodes = append(nodes, v)
			}
		}
	}
	sort.Ints(nodes)
	return nodes
}

// MaxNode returns the largest vertex index in use, or 0 when the
// builder has no vertices.
func (b Builder) MaxNode() int {
	maxNode := 0
	for _, e := range b.edges {
		for _, v := range e {
			if v > maxNode {
				maxNode = v
			}
		}
	}
	return maxNode
}

// Sum returns the disjoint union of the two games: other's tokens are
// shifted past the receiver's and both edge lists are kept. Nimbers
// compose by XOR across the summands.
func (b Builder) Sum(other Builder) Builder {
	shift := b.MaxNode() + 1
	edges := copyEdges(b.edges)
	for _, e := range other.edges {
		edges = append(edges, shiftedCopy(e, shift))
	}
	return Builder{edges: edges}
}

// FullyConnect returns the receiver and other side by side plus a
// two-token edge between every cross pair.
func (b Builder) FullyConnect(other Builder) Builder {
	shift := b.MaxNode() + 1
	edges := copyEdges(b.edges)
	for _, e := range other.edges {
		edges = append(edges, shiftedCopy(e, shift))
	}
	for _, i := range b.Nodes() {
		for _, j := range other.Nodes() {
			edges = append(edges, []int{i, j + shift})
		}
	}
	return Builder{edges: edges}
}

// ConnectUnitToAll fully connects one fresh token to every existing
// token.
func (b Builder) ConnectUnitToAll() Builder {
	return b.FullyConnect(Unit())
}

// Extrude replicates the game l times along a new axis and adds one
// alignment edge per token connecting its copies across the layers.
func (b Builder) Extrude(l int) Builder {
	shift := b.MaxNode() + 1
	edges := copyEdges(b.edges)
	for _, e := range b.edges {
		for offset := 0; offset < l; offset++ {
			edges = append(edges, shiftedCopy(e, offset*shift))
		}
	}
	for node := 0; node < shift; node++ {
		aligned := make([]int, 0, l)
		for offset := 0; offset < l; offset++ {
			aligned = append(aligned, node+offset*shift)
		}
		edges = append(edges, aligned)
	}
	return Builder{edges: edges}
}

// Build canonicalizes the accumulated edges into connected positions.
// Construction options (e.g. hypergraph.WithSparse) pass through.
func (b Builder) Build(opts ...hypergraph.Option) ([]game.Position, error) {
	return game.FromEdges(b.edges, opts...)
}

// BuildOne builds and returns the largest connected position, the
// common case for families that are connected by construction.
// Returns ErrEmptyBuild when nothing remains.
func (b Builder) BuildOne(opts ...hypergraph.Option) (game.Position, error) {
	parts, err := b.Build(opts...)
	if err != nil {
		return game.Position{}, err
	}
	if len(parts) == 0 {
		return game.Position{}, ErrEmptyBuild
	}
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].NumNodes() < parts[j].NumNodes()
	})
	return parts[len(parts)-1], nil
}

func copyEdges(edges [][]int) [][]int {
	out := make([][]int, len(edges))
	for i, e := range edges {
		out[i] = append(make([]int, 0, len(e)), e...)
	}
	return out
}

func shiftedCopy(e []int, shift int) []int {
	out := make([]int, len(e))
	for i, v := range e {
		out[i] = v + shift
	}
	return out
}
