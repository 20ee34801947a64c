// Package vset provides the vertex-set primitive underneath the
// canonical hypergraph representation.
//
// What & Why:
//
//	A vertex set holds indices in [0, N) and must support the handful
//	of operations the canonicalizer and move generator lean on: insert,
//	union, difference, subset and intersection tests, membership,
//	iteration, popcount, equality, and an ordered byte encoding used
//	for hashing canonical positions.
//
// Two interchangeable backends satisfy the same Set contract:
//
//   - Bits128 — a two-word bitmask for N ≤ 128. Set operations are
//     single-word bit ops, iteration is a trailing-zero scan, and
//     popcount is native. This is the default backend.
//   - Sparse  — a sorted slice of indices with no upper bound on N.
//     Set operations degrade to linear merges.
//
// Pick one backend per constructed hypergraph; the two kinds do not
// mix inside a single position, and mixing them in one operation is an
// internal invariant violation (it panics).
//
// Complexity:
//
//	Bits128 operations run in O(1) words; iteration is O(popcount).
//	Sparse operations run in O(len) linear merges.
package vset
