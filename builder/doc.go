// Package builder composes hyperedge lists for standard taking-game
// families and hands them to the game package for canonicalization.
//
// What & Why:
//
//	The core engine only ever sees a hyperedge list. This package is
//	the DSL that produces those lists: primitive games (Empty, Unit,
//	Heap, Kayles), geometric families (Rect, Triangle, HyperCube,
//	HyperCuboid, HyperTetrahedron), seeded random hypergraphs, and the
//	combinators that grow them (Extrude, FullyConnect, ConnectUnitToAll,
//	Sum).
//
// Determinism: every constructor and combinator is deterministic for
// the same inputs; Random takes a caller-supplied *rand.Rand so a
// frozen seed reproduces the same hypergraph.
//
// Builders are value types; combinators return fresh Builders and
// never mutate their receiver, so intermediate builders can be reused.
//
// Errors:
//
//	ErrEmptyBuild - BuildOne on a builder whose position vanishes
//	                (no vertices survive construction).
package builder
