// Package game: representative move generation.
package game

import "github.com/katalvlaran/grundy/vset"

// SplitMoves enumerates one successor state per structural equivalence
// class of legal moves. Each entry is the multiset of connected
// positions left after the move; an empty entry means the move ends
// the game.
//
// Representative selection:
//
//  1. One representative edge per edge-partition block (its first edge).
//  2. Within the chosen edge, only the number of vertices removed from
//     each node-partition block matters; which ones is irrelevant after
//     re-canonicalization.
//  3. The Cartesian product of per-block removal counts is walked with
//     an odometer, skipping the all-zero tuple (the empty move is
//     illegal).
//
// The full legal move set is a superset of what this returns, but the
// skipped successors differ from emitted ones only by permutations of
// structurally equivalent vertices and therefore share their nimbers.
//
// Complexity: Σ over representative edges of Π (|e ∩ P_i| + 1) − 1
// successor constructions.
func (p Position) SplitMoves() [][]Position {
	if p.g.IsEmpty() {
		return nil
	}
	var moves [][]Position
	for _, blk := range p.g.EdgePartitions() {
		moves = append(moves, p.movesOfEdge(blk.Start)...)
	}
	return moves
}

// movesOfEdge generates the representative successors reachable by
// removing vertices of one hyperedge.
func (p Position) movesOfEdge(edge int) [][]Position {
	parts := p.g.Edges()[edge].Partition(p.g.NodePartitions())

	// Per non-empty block: removal choices ordered empty-first, then
	// |part|, |part|−1, …, 1 vertices. Only the count matters; the
	// concrete vertices are whichever Pop leaves behind.
	var choices [][]vset.Set
	for _, part := range parts {
		if part.IsEmpty() {
			continue
		}
		removals := make([]vset.Set, 0, part.Len()+1)
		removals = append(removals, part.Empty())
		cur := part.Clone()
		for !cur.IsEmpty() {
			removals = append(removals, cur.Clone())
			cur.Pop()
		}
		choices = append(choices, removals)
	}

	var moves [][]Position
	eachCombination(choices, func(picked []vset.Set) {
		remove := picked[0].Empty()
		for _, part := range picked {
			remove.Union(part)
		}
		moves = append(moves, p.removeSet(remove))
	})
	return moves
}

// eachCombination walks the Cartesian product of the choice lists with
// an odometer, skipping the first tuple (every odometer digit at its
// first entry — the all-empty removal). The scratch tuple passed to fn
// is reused between calls.
func eachCombination(choices [][]vset.Set, fn func(picked []vset.Set)) {
	if len(choices) == 0 {
		return
	}
	idx := make([]int, len(choices))
	picked := make([]vset.Set, len(choices))
	first := true
	for {
		if first {
			first = false
		} else {
			for i := range picked {
				picked[i] = choices[i][idx[i]]
			}
			fn(picked)
		}

		// Advance the odometer, least-significant digit first.
		d := 0
		for d < len(idx) {
			idx[d]++
			if idx[d] < len(choices[d]) {
				break
			}
			idx[d] = 0
			d++
		}
		if d == len(idx) {
			return
		}
	}
}
