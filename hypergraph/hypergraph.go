// Package hypergraph: the Hypergraph type and its read-only surface.
package hypergraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/grundy/vset"
)

// Hypergraph is one connected position in canonical form.
//
// The edge sequence, the node-label table, and the two structural
// partitions are all in canonical order; two Hypergraphs built from
// isomorphic inputs are byte-equal. Values are immutable after
// construction — every operation that changes the position returns new
// Hypergraphs.
type Hypergraph struct {
	// edges is the canonical sequence of hyperedges. No edge is empty
	// and no edge is a subset of another.
	edges []vset.Set

	// nodes maps each canonical vertex index to its original label, so
	// callers can recover provenance after relabeling.
	nodes []int

	// nodeParts and edgeParts are structural partitions in boundary
	// form: nodeParts[0] = 0, nodeParts[len-1] = len(nodes), and each
	// adjacent pair bounds one block of structurally equivalent
	// vertices (likewise edgeParts for edges).
	nodeParts []int
	edgeParts []int

	// proto is an empty set of the construction backend, kept so
	// derived operations allocate matching sets.
	proto vset.Set

	// key is the canonical byte encoding of edges, fixed at
	// construction. Equality and hashing use only this.
	key string
}

// NumNodes returns the number of vertices. Complexity: O(1).
func (h *Hypergraph) NumNodes() int { return len(h.nodes) }

// Nodes returns the original label of each canonical vertex index.
// The returned slice is shared; treat it as read-only.
func (h *Hypergraph) Nodes() []int { return h.nodes }

// IsEmpty reports whether the hypergraph has no vertices.
// Complexity: O(1).
func (h *Hypergraph) IsEmpty() bool { return len(h.nodes) == 0 }

// Edges returns the canonical hyperedge sequence.
// The returned slice and its sets are shared; treat them as read-only.
func (h *Hypergraph) Edges() []vset.Set { return h.edges }

// NodePartitions returns the structural vertex partition as ordered
// contiguous ranges. Vertices within one range are indistinguishable
// by color refinement. Complexity: O(blocks).
func (h *Hypergraph) NodePartitions() []vset.Range {
	return boundariesToRanges(h.nodeParts)
}

// EdgePartitions returns the structural edge partition as ordered
// contiguous ranges. Complexity: O(blocks).
func (h *Hypergraph) EdgePartitions() []vset.Range {
	return boundariesToRanges(h.edgeParts)
}

// boundariesToRanges converts boundary form to half-open ranges.
func boundariesToRanges(bounds []int) []vset.Range {
	if len(bounds) < 2 {
		return nil
	}
	out := make([]vset.Range, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		out = append(out, vset.Range{Start: bounds[i-1], End: bounds[i]})
	}
	return out
}

// Key returns the canonical encoding of the edge sequence. Hypergraphs
// are equal exactly when their keys are equal, and equal keys imply
// game-theoretic equivalence. Complexity: O(1).
func (h *Hypergraph) Key() string { return h.key }

// Equal compares canonical edge sequences; node labels do not
// participate. Complexity: O(len(key)).
func (h *Hypergraph) Equal(other *Hypergraph) bool {
	return other != nil && h.key == other.key
}

// NewSet builds a vertex set of this hypergraph's backend holding the
// given canonical vertex indices. Complexity: O(len(indices)).
func (h *Hypergraph) NewSet(indices ...int) vset.Set {
	s := h.proto.Empty()
	for _, v := range indices {
		s.Insert(v)
	}
	return s
}

// Dual returns, for each vertex, the ascending list of incident edge
// indices. Complexity: O(Σ|e|).
func (h *Hypergraph) Dual() [][]int {
	dual := make([][]int, len(h.nodes))
	for i, e := range h.edges {
		e.Each(func(v int) bool {
			dual[v] = append(dual[v], i)
			return true
		})
	}
	return dual
}

// Minus removes the given canonical vertex indices from every edge and
// rebuilds: redundant edges are dropped again, components re-split and
// re-canonicalized, and vertices left with no incident edge disappear.
// The receiver is unchanged. Complexity: construction cost of the
// remaining edges.
func (h *Hypergraph) Minus(remove vset.Set) []*Hypergraph {
	edges := make([]vset.Set, len(h.edges))
	for i, e := range h.edges {
		edges[i] = e.Minus(remove)
	}
	labels := make([]int, len(h.nodes))
	copy(labels, h.nodes)
	return build(edges, labels, h.proto)
}

// String renders the position as a node-label header plus one row per
// edge marking its members. Intended for debugging and small drivers.
func (h *Hypergraph) String() string {
	if h.IsEmpty() {
		return "Empty hypergraph\n"
	}
	maxLabel := 0
	for _, n := range h.nodes {
		if n > maxLabel {
			maxLabel = n
		}
	}
	width := len(fmt.Sprint(maxLabel))
	if width < 3 {
		width = 3
	}

	var b strings.Builder
	b.WriteString("Nodes:  ")
	for _, n := range h.nodes {
		fmt.Fprintf(&b, "%*d ", width, n)
	}
	b.WriteByte('\n')
	b.WriteString("Edges:\n")
	for _, e := range h.edges {
		b.WriteString("        ")
		for i, n := range h.nodes {
			if e.Contains(i) {
				fmt.Fprintf(&b, "%*d ", width, n)
			} else {
				fmt.Fprintf(&b, "%*s ", width, "")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
