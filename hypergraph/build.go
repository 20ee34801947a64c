// Package hypergraph: construction pipeline — validate, flatten,
// deduplicate, split into connected components.
package hypergraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/grundy/vset"
)

// FromEdges builds the connected canonical components of the position
// described by the raw hyperedge list. Vertex labels default to the
// indices themselves. Empty input edges are permitted and silently
// removed.
//
// Errors:
//   - ErrTooLarge when the dense backend (the default) sees an index ≥ 128.
//   - ErrIllConfigured on a negative vertex index.
//
// Complexity: O(E² · set-op) edge deduplication dominates for small
// positions; canonical refinement adds O((V+E) log(V+E)) per round.
func FromEdges(edges [][]int, opts ...Option) ([]*Hypergraph, error) {
	maxNode, err := checkIndices(edges)
	if err != nil {
		return nil, err
	}
	labels := make([]int, maxNode+1)
	for i := range labels {
		labels[i] = i
	}
	return fromValidated(edges, labels, resolveOptions(opts))
}

// FromEdgesWithLabels is FromEdges with caller-supplied vertex labels:
// labels[i] is carried as the provenance of raw vertex index i.
//
// Errors: those of FromEdges, plus ErrIllConfigured when labels is
// shorter than the edges require.
func FromEdgesWithLabels(edges [][]int, labels []int, opts ...Option) ([]*Hypergraph, error) {
	maxNode, err := checkIndices(edges)
	if err != nil {
		return nil, err
	}
	if len(labels) < maxNode+1 {
		return nil, fmt.Errorf("%w: %d labels for max vertex index %d",
			ErrIllConfigured, len(labels), maxNode)
	}
	owned := make([]int, maxNode+1)
	copy(owned, labels[:maxNode+1])
	return fromValidated(edges, owned, resolveOptions(opts))
}

// checkIndices rejects negative indices and returns the largest index
// used (-1 when no edge has a vertex).
func checkIndices(edges [][]int) (int, error) {
	maxNode := -1
	for _, e := range edges {
		for _, v := range e {
			if v < 0 {
				return 0, fmt.Errorf("%w: negative vertex index %d", ErrIllConfigured, v)
			}
			if v > maxNode {
				maxNode = v
			}
		}
	}
	return maxNode, nil
}

// fromValidated converts the raw edges onto the chosen backend and runs
// the construction pipeline.
func fromValidated(edges [][]int, labels []int, cfg config) ([]*Hypergraph, error) {
	var proto vset.Set
	if cfg.sparse {
		proto = &vset.Sparse{}
	} else {
		proto = &vset.Bits128{}
		for _, e := range edges {
			for _, v := range e {
				if v >= vset.MaxDense {
					return nil, fmt.Errorf("%w: vertex index %d (max %d)",
						ErrTooLarge, v, vset.MaxDense-1)
				}
			}
		}
	}
	sets := make([]vset.Set, 0, len(edges))
	for _, e := range edges {
		s := proto.Empty()
		for _, v := range e {
			s.Insert(v)
		}
		sets = append(sets, s)
	}
	return build(sets, labels, proto), nil
}

// build runs deduplication and the component split, canonicalizing
// each resulting component. It owns both argument slices.
func build(edges []vset.Set, labels []int, proto vset.Set) []*Hypergraph {
	g := &Hypergraph{edges: edges, nodes: labels, proto: proto}
	g.removeRedundant()
	return g.split()
}

// flattenNodes compacts the vertex indices used by the edges onto
// [0, N) and reorders the label table to match. When the used indices
// are already exactly {0, …, N-1} only the label table is truncated.
func (h *Hypergraph) flattenNodes() {
	all := h.proto.Empty()
	for _, e := range h.edges {
		all.Union(e)
	}
	if all.IsFlattened() {
		h.nodes = h.nodes[:all.Len()]
		return
	}
	// Values() is the ascending list of present indices, which is
	// exactly the perm[new] = old compaction map.
	h.applyNodeMap(all.Values())
}

// removeRedundant drops empty edges and edges that are subsets of an
// already-accepted edge. Edges are visited in order of descending
// cardinality (stable), so supersets are always seen first. If any
// edge was removed the vertices are re-flattened, because a previously
// referenced vertex may now be unused.
func (h *Hypergraph) removeRedundant() {
	h.flattenNodes()
	sort.SliceStable(h.edges, func(i, j int) bool {
		return h.edges[i].Len() > h.edges[j].Len()
	})

	kept := h.edges[:0]
	before := len(h.edges)
	for _, e := range h.edges {
		if e.IsEmpty() {
			continue
		}
		redundant := false
		for _, u := range kept {
			if e.IsSubset(u) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, e)
		}
	}
	h.edges = kept
	if before != len(h.edges) {
		h.flattenNodes()
	}
}

// split partitions the edges into connected components via union-find
// over the vertices and canonicalizes each component independently.
// Components come out in first-seen root order, so the result is
// deterministic for a given input.
func (h *Hypergraph) split() []*Hypergraph {
	uf := newUnionFind(len(h.nodes))
	for _, e := range h.edges {
		first := -1
		e.Each(func(v int) bool {
			if first < 0 {
				first = v
			} else {
				uf.union(first, v)
			}
			return true
		})
	}

	// Bucket edges by the component root of any member vertex.
	bucketOf := make(map[int]int, 2)
	var buckets [][]int
	for i, e := range h.edges {
		first := -1
		e.Each(func(v int) bool { first = v; return false })
		if first < 0 {
			panic("hypergraph: empty edge survived deduplication")
		}
		root := uf.find(first)
		b, ok := bucketOf[root]
		if !ok {
			b = len(buckets)
			bucketOf[root] = b
			buckets = append(buckets, nil)
		}
		buckets[b] = append(buckets[b], i)
	}

	if len(buckets) == 0 {
		return nil
	}
	if len(buckets) == 1 {
		return []*Hypergraph{newSorter(h).sort()}
	}

	parts := make([]*Hypergraph, 0, len(buckets))
	for _, edgeIdx := range buckets {
		part := &Hypergraph{
			edges: make([]vset.Set, 0, len(edgeIdx)),
			nodes: append([]int(nil), h.nodes...),
			proto: h.proto,
		}
		for _, i := range edgeIdx {
			part.edges = append(part.edges, h.edges[i])
		}
		part.flattenNodes()
		parts = append(parts, newSorter(part).sort())
	}
	return parts
}

// applyEdgeMap reorders the edges through m, where m[new] = old.
func (h *Hypergraph) applyEdgeMap(m []int) {
	old := h.edges
	h.edges = make([]vset.Set, len(m))
	for i, oldIdx := range m {
		h.edges[i] = old[oldIdx]
	}
}

// applyNodeMap relabels every edge and reorders the label table
// through m, where m[new] = old.
func (h *Hypergraph) applyNodeMap(m []int) {
	for _, e := range h.edges {
		e.ApplyNodeMap(m)
	}
	old := h.nodes
	h.nodes = make([]int, len(m))
	for i, oldIdx := range m {
		h.nodes[i] = old[oldIdx]
	}
}

// computeKey fixes the canonical encoding of the edge sequence.
// Called once, after canonical ordering is final.
func (h *Hypergraph) computeKey() {
	var buf []byte
	for _, e := range h.edges {
		buf = e.AppendKey(buf)
	}
	h.key = string(buf)
}

// unionFind is a slice-based disjoint-set with union by rank and
// iterative path compression.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find walks to the root, pointing each visited node at its
// grandparent to keep the trees shallow.
func (uf *unionFind) find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}
	return v
}

// union merges the components of u and v by rank.
func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
}
