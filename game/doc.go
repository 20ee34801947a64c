// Package game pairs a canonical hypergraph with its game-theoretic
// operations: symmetry search, representative move generation, and the
// nimber upper bound they imply.
//
// What & Why:
//
//	A Position is one connected canonical hypergraph read as a taking
//	game: vertices are tokens, a move picks one hyperedge and removes
//	any non-empty subset of it, and the player who cannot move loses.
//	The package keeps hypergraph concerns (canonical form, splitting)
//	separate from game concerns (what counts as a move, when mirroring
//	wins).
//
// The three operations:
//
//   - FindSymmetry — searches for a fixed-point-free involution on the
//     vertices that never maps within a hyperedge and preserves
//     neighborhoods. Success proves nimber 0 by mirror strategy; failure
//     proves nothing.
//   - SplitMoves   — enumerates one successor state per structural
//     equivalence class of moves: a representative edge per edge
//     partition block, and per-block removal counts instead of explicit
//     subsets. Skipped successors are permutations of emitted ones and
//     share their nimbers.
//   - MaxNimber    — 0 when a symmetry exists, otherwise the vertex
//     count; a non-strict upper bound used by the evaluator to prune.
package game
