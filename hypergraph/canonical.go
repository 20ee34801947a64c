// Package hypergraph: canonical ordering of one connected component.
//
// The sorter runs iterated color refinement (1-dimensional
// Weisfeiler–Leman style) simultaneously over the vertices and edges
// of the bipartite incidence structure, then fixes a canonical linear
// order within each color class by a bounded dual-sort iteration.
package hypergraph

import (
	"math"
	"slices"
)

// maxCanonicalRounds caps the canonical in-class ordering pass. The
// refinement fixed point itself needs no cap: every round either grows
// the class count or terminates.
const maxCanonicalRounds = 128

// sorter carries the permutations, key tables, and scratch buffers of
// one canonicalization run. Permutations map position → original
// index; key tables are indexed by original index.
type sorter struct {
	nodeMap []int
	edgeMap []int

	tempBuf   []int // convergence snapshots and partition maps
	keyMapBuf []int // original index → refinement color / position key

	nodeKeys [][]int
	edgeKeys [][]int

	dual [][]int
	g    *Hypergraph
}

// newSorter prepares identity permutations and size-based initial keys:
// larger edges (and higher-degree vertices) receive smaller keys, so
// they sort first.
func newSorter(g *Hypergraph) *sorter {
	dual := g.Dual()
	s := &sorter{
		nodeMap: identity(len(g.nodes)),
		edgeMap: identity(len(g.edges)),
		dual:    dual,
		g:       g,
	}
	s.nodeKeys = make([][]int, len(g.nodes))
	for i, incident := range dual {
		s.nodeKeys[i] = []int{math.MaxInt - len(incident)}
	}
	s.edgeKeys = make([][]int, len(g.edges))
	for i, e := range g.edges {
		s.edgeKeys[i] = []int{math.MaxInt - e.Len()}
	}
	return s
}

func identity(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// sort refines the structural partitions to a fixed point, settles the
// canonical order within each class, applies both permutations to the
// hypergraph, and seals its key.
func (s *sorter) sort() *Hypergraph {
	s.g.edgeParts = []int{0, len(s.g.edges)}
	s.g.nodeParts = []int{0, len(s.g.nodes)}

	s.sortEdges()
	s.sortNodes()

	s.refineToFixedPoint()
	s.sortCanonically()

	s.g.applyEdgeMap(s.edgeMap)
	s.g.applyNodeMap(s.nodeMap)
	s.g.computeKey()
	return s.g
}

// refineToFixedPoint alternates vertex and edge refinement until the
// total number of color classes stops growing. A vertex's new color is
// the sorted multiset of its incident edges' classes; dually for
// edges.
func (s *sorter) refineToFixedPoint() {
	for {
		before := len(s.g.nodeParts) + len(s.g.edgeParts)

		fillPartitionMap(&s.tempBuf, s.g.edgeParts)
		applyInvPermutation(s.tempBuf, &s.keyMapBuf, s.edgeMap)
		s.buildNodeKeys()
		s.sortNodes()
		s.refineNodes()

		fillPartitionMap(&s.tempBuf, s.g.nodeParts)
		applyInvPermutation(s.tempBuf, &s.keyMapBuf, s.nodeMap)
		s.buildEdgeKeys()
		s.sortEdges()
		s.refineEdges()

		if before == len(s.g.nodeParts)+len(s.g.edgeParts) {
			return
		}
	}
}

// sortCanonically settles a linear order inside each stable class:
// vertices sort by the (reversed) current positions of their incident
// edges, then edges dually, until neither permutation moves or the
// round cap is reached.
func (s *sorter) sortCanonically() {
	for round := 0; round < maxCanonicalRounds; round++ {
		fillInvPermutation(&s.keyMapBuf, s.edgeMap)
		for i, k := range s.keyMapBuf {
			s.keyMapBuf[i] = len(s.edgeMap) - 1 - k
		}
		s.tempBuf = append(s.tempBuf[:0], s.nodeMap...)
		s.buildNodeKeys()
		s.sortNodes()
		nodesSettled := slices.Equal(s.tempBuf, s.nodeMap)

		fillInvPermutation(&s.keyMapBuf, s.nodeMap)
		for i, k := range s.keyMapBuf {
			s.keyMapBuf[i] = len(s.nodeMap) - 1 - k
		}
		s.tempBuf = append(s.tempBuf[:0], s.edgeMap...)
		s.buildEdgeKeys()
		s.sortEdges()
		edgesSettled := slices.Equal(s.tempBuf, s.edgeMap)

		if nodesSettled && edgesSettled {
			return
		}
	}
}

// buildNodeKeys rebuilds each vertex's key as the sorted list of its
// incident edges' current values in keyMapBuf.
func (s *sorter) buildNodeKeys() {
	for i, incident := range s.dual {
		key := s.nodeKeys[i][:0]
		for _, e := range incident {
			key = append(key, s.keyMapBuf[e])
		}
		slices.Sort(key)
		s.nodeKeys[i] = key
	}
}

// buildEdgeKeys rebuilds each edge's key as the sorted list of its
// vertices' current values in keyMapBuf.
func (s *sorter) buildEdgeKeys() {
	for i, e := range s.g.edges {
		key := s.edgeKeys[i][:0]
		e.Each(func(v int) bool {
			key = append(key, s.keyMapBuf[v])
			return true
		})
		slices.Sort(key)
		s.edgeKeys[i] = key
	}
}

func (s *sorter) sortEdges() {
	sortPartitionsByKey(s.g.edgeParts, s.edgeMap, s.edgeKeys)
}

func (s *sorter) refineEdges() {
	refinePartitionsByKey(&s.g.edgeParts, s.edgeMap, s.edgeKeys)
}

func (s *sorter) sortNodes() {
	sortPartitionsByKey(s.g.nodeParts, s.nodeMap, s.nodeKeys)
}

func (s *sorter) refineNodes() {
	refinePartitionsByKey(&s.g.nodeParts, s.nodeMap, s.nodeKeys)
}

// sortPartitionsByKey orders the permutation within each existing
// block by the key of the original index it maps to. Ties stay within
// one refinement class, so their relative order never leaks into the
// canonical form.
func sortPartitionsByKey(bounds []int, perm []int, keys [][]int) {
	for i := 1; i < len(bounds); i++ {
		block := perm[bounds[i-1]:bounds[i]]
		slices.SortFunc(block, func(a, b int) int {
			return slices.Compare(keys[a], keys[b])
		})
	}
}

// refinePartitionsByKey rebuilds the boundary vector, cutting between
// adjacent positions whose keys differ.
func refinePartitionsByKey(bounds *[]int, perm []int, keys [][]int) {
	out := (*bounds)[:0]
	out = append(out, 0)
	for i := 1; i < len(keys); i++ {
		if !slices.Equal(keys[perm[i-1]], keys[perm[i]]) {
			out = append(out, i)
		}
	}
	out = append(out, len(keys))
	*bounds = out
}

// fillPartitionMap writes, for each position, the index of the block
// containing it: buf[pos] = block.
func fillPartitionMap(buf *[]int, bounds []int) {
	n := bounds[len(bounds)-1]
	*buf = resize(*buf, n)
	p := 1
	for i := 0; i < n; i++ {
		if bounds[p] == i {
			p++
		}
		(*buf)[i] = p - 1
	}
}

// fillInvPermutation writes the inverse of perm: buf[perm[i]] = i.
func fillInvPermutation(buf *[]int, perm []int) {
	*buf = resize(*buf, len(perm))
	for i, orig := range perm {
		(*buf)[orig] = i
	}
}

// applyInvPermutation scatters in through the inverse of perm:
// out[perm[i]] = in[i].
func applyInvPermutation(in []int, out *[]int, perm []int) {
	*out = resize(*out, len(in))
	for i, orig := range perm {
		(*out)[orig] = in[i]
	}
}

func resize(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	return buf[:n]
}
