// Package nimber evaluates Sprague–Grundy values of taking-game
// positions by memoized recursive search.
//
// What & Why:
//
//	The nimber of a position is the mex (least excluded non-negative
//	integer) of its successors' nimbers, and the nimber of a state made
//	of independent components is the XOR of the component nimbers. The
//	Evaluator walks this recursion over representative moves only,
//	caches every answer under the position's canonical key, and uses a
//	symmetry proof as a zero short-circuit.
//
// Concurrency model:
//
//	One logical worker recurses; the only concurrent actor is an
//	external canceller flipping the shared CancelFlag, typically from a
//	timer goroutine. The flag is write-rarely/read-often with relaxed
//	semantics — observing cancellation a step late merely costs one
//	extra recursive call. The cache is unlocked and must stay on a
//	single goroutine.
//
// Cancellation surfaces as the sentinel ErrCancelled, a control signal
// rather than a fault: branch with errors.Is, and keep the evaluator —
// cache entries written before cancellation remain correct.
package nimber
