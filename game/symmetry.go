// Package game: the vertex involution search.
package game

import "github.com/katalvlaran/grundy/vset"

// FindSymmetry searches for a fixed-point-free involution σ on the
// vertices such that σ never maps a vertex into its own hyperedge and
// mapped neighbors stay neighbors of the mapped vertex. When such a σ
// exists the second player mirrors every move, so the nimber is 0.
//
// The result is the pairing vector (result[v] = σ(v)) and true, or
// nil and false when the search exhausts. A failed search proves
// nothing about the nimber.
//
// Quick rejections: the vertex count, edge count, and every structural
// partition block must be even, otherwise no perfect pairing within
// blocks can exist.
//
// Complexity: worst-case exponential backtracking, pruned by the
// structural partitions and the neighborhood-consistency check.
func (p Position) FindSymmetry() ([]int, bool) {
	g := p.g
	if g.NumNodes()%2 != 0 || len(g.Edges())%2 != 0 {
		return nil, false
	}
	for _, blk := range g.NodePartitions() {
		if blk.Len()%2 != 0 {
			return nil, false
		}
	}
	for _, blk := range g.EdgePartitions() {
		if blk.Len()%2 != 0 {
			return nil, false
		}
	}

	search := &symmetrySearch{
		paired: make([]int, g.NumNodes()),
		hoods:  p.neighborhoods(),
		blocks: g.NodePartitions(),
	}
	for i := range search.paired {
		search.paired[i] = unpaired
	}
	if !search.extend() {
		return nil, false
	}
	return search.paired, true
}

// unpaired marks a vertex not yet matched by the backtracker.
const unpaired = -1

// symmetrySearch carries the backtracking state: the partial pairing
// and the per-vertex neighborhoods.
type symmetrySearch struct {
	paired []int
	hoods  []vset.Set
	blocks []vset.Range
}

// extend pairs the first unmatched vertex with each viable candidate
// in turn and recurses; the first complete involution wins.
func (s *symmetrySearch) extend() bool {
	v := -1
	for i, m := range s.paired {
		if m == unpaired {
			v = i
			break
		}
	}
	if v < 0 {
		return true // every vertex is matched
	}

	blk := s.blockOf(v)
	for cand := blk.Start; cand < blk.End; cand++ {
		if !s.viable(v, cand) {
			continue
		}
		s.paired[v] = cand
		s.paired[cand] = v
		if s.extend() {
			return true
		}
		s.paired[v] = unpaired
		s.paired[cand] = unpaired
	}
	return false
}

// blockOf returns the structural partition block containing v.
func (s *symmetrySearch) blockOf(v int) vset.Range {
	for _, blk := range s.blocks {
		if blk.Contains(v) {
			return blk
		}
	}
	panic("game: structural partition does not cover every vertex")
}

// viable decides whether v and cand can be symmetric partners:
// distinct, both unmatched, never sharing a hyperedge, and every
// already-mapped neighbor of v must land inside cand's neighborhood.
func (s *symmetrySearch) viable(v, cand int) bool {
	if v == cand || s.paired[cand] != unpaired {
		return false
	}
	if s.hoods[v].Contains(cand) {
		return false
	}
	candHood := s.hoods[cand]
	ok := true
	s.hoods[v].Each(func(neighbor int) bool {
		mapped := s.paired[neighbor]
		if mapped != unpaired && !candHood.Contains(mapped) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// neighborhoods builds N(v) = union of the hyperedges incident to v,
// including v itself.
func (p Position) neighborhoods() []vset.Set {
	g := p.g
	hoods := make([]vset.Set, g.NumNodes())
	for i := range hoods {
		hoods[i] = g.NewSet()
	}
	dual := g.Dual()
	edges := g.Edges()
	for v, incident := range dual {
		for _, e := range incident {
			hoods[v].Union(edges[e])
		}
	}
	return hoods
}
