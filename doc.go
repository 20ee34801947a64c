// Package grundy computes Sprague–Grundy values ("nimbers") for
// impartial taking games played on hypergraphs.
//
// 🎯 What is grundy?
//
//	A position is a hypergraph whose vertices are tokens; a move picks
//	one hyperedge and removes any non-empty subset of its vertices.
//	Two players alternate, and whoever cannot move loses. The nimber
//	classifies each position under XOR-composition of independent games.
//
// ✨ Why grundy?
//
//   - Canonical positions — isomorphic positions become byte-equal,
//     so memoization actually deduplicates
//   - Pruned search       — one representative move per structural
//     equivalence class, symmetry proofs short-circuit to nimber 0
//   - Cancellable         — a shared flag stops a long evaluation
//     cleanly from a timer or signal handler
//
// Everything is organized under five subpackages:
//
//	vset/       — dense (128-bit) and sparse vertex-set backends
//	hypergraph/ — redundancy removal, component split, canonical form
//	game/       — taking-game façade: symmetry search & move generation
//	nimber/     — memoizing, cancellation-aware nimber evaluator
//	builder/    — game families: heaps, Kayles, grids, cuboids, simplices
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	the 2×2 grid (rows and columns as hyperedges) has nimber 0:
//	the mirror symmetry 0↔3, 1↔2 steals every strategy.
//
//	go get github.com/katalvlaran/grundy
package grundy
