// Package hypergraph implements the canonical hypergraph form that
// makes memoized game search tractable.
//
// What & Why:
//
//	A raw hyperedge list is an arbitrary labeling of an abstract
//	position: relabeling vertices or reordering edges yields the same
//	game. This package reduces every input to a canonical
//	representative, so isomorphic positions compare equal and share a
//	single cache entry downstream.
//
// Construction runs in four phases:
//
//  1. Flatten   — compact the used vertex indices onto [0, N), keeping
//     the original labels in a node table for provenance.
//  2. Deduplicate — drop empty edges and edges that are subsets of
//     another edge (they never enable an extra move).
//  3. Split     — union-find the vertices into connected components;
//     each component becomes its own Hypergraph.
//  4. Canonicalize — iterated color refinement over the bipartite
//     incidence structure, then a bounded canonical ordering pass,
//     producing byte-equal forms for isomorphic inputs.
//
// The canonical form is a strong heuristic, provably complete on trees
// and color-distinguishable hypergraphs. Inputs that escape refinement
// cost duplicate cache entries downstream, never wrong answers.
//
// Invariants:
//
//   - Every constructed Hypergraph is connected.
//   - No edge is empty, and no edge is a subset of another.
//   - Equality and hashing depend only on the canonical edge sequence.
//
// Errors:
//
//	ErrTooLarge      - dense backend given a vertex index ≥ 128.
//	ErrIllConfigured - caller-supplied labels shorter than the edges require,
//	                   or a negative vertex index.
package hypergraph
