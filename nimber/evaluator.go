// Package nimber: the memoizing, cancellation-aware evaluator.
package nimber

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/grundy/game"
)

// ErrCancelled is returned by Nimber and NimberOfComponents when the
// shared CancelFlag fired before the evaluation completed. It is a
// control signal, not a fault; the evaluator and its cache stay valid.
var ErrCancelled = errors.New("nimber: evaluation cancelled")

// CancelFlag is the shared cancellation handle: many readers, one
// writer. The zero value is ready to use and not cancelled.
type CancelFlag struct {
	fired atomic.Bool
}

// Cancel flips the flag. Safe from any goroutine; idempotent.
func (f *CancelFlag) Cancel() { f.fired.Store(true) }

// Cancelled reports whether Cancel has been called.
func (f *CancelFlag) Cancelled() bool { return f.fired.Load() }

// Evaluator owns the memoization table mapping canonical positions to
// nimbers. It is single-goroutine: share the CancelFlag across
// goroutines, not the Evaluator.
type Evaluator struct {
	cache  map[string]int
	cancel *CancelFlag
}

// New returns an Evaluator with an empty cache and a fresh flag.
// A process may hold any number of independent Evaluators.
func New() *Evaluator {
	return &Evaluator{
		cache:  make(map[string]int),
		cancel: &CancelFlag{},
	}
}

// CancelFlag returns the shared cancellation handle. Hand it to a
// timer or signal goroutine; the evaluator checks it on entry to every
// recursive call, so an in-flight evaluation unwinds within work
// proportional to the current recursion depth.
func (e *Evaluator) CancelFlag() *CancelFlag { return e.cancel }

// CacheSize returns the number of memoized positions. Diagnostic;
// non-decreasing over the evaluator's lifetime.
func (e *Evaluator) CacheSize() int { return len(e.cache) }

// Nimber computes the Sprague–Grundy value of a single position.
// Returns ErrCancelled if the flag fired first.
func (e *Evaluator) Nimber(p game.Position) (int, error) {
	return e.nimberOf(p)
}

// NimberOfComponents computes the nimber of a state made of
// independent positions: the XOR of the component nimbers. The empty
// state has nimber 0. Returns ErrCancelled if the flag fired first.
func (e *Evaluator) NimberOfComponents(parts []game.Position) (int, error) {
	combined := 0
	for _, p := range parts {
		n, err := e.nimberOf(p)
		if err != nil {
			return 0, err
		}
		combined ^= n
	}
	return combined, nil
}

// nimberOf is the recursive core: cancellation check, cache hit,
// symmetry short-circuit, then mex over the representative successors.
func (e *Evaluator) nimberOf(p game.Position) (int, error) {
	if e.cancel.Cancelled() {
		return 0, ErrCancelled
	}
	key := p.Key()
	if n, ok := e.cache[key]; ok {
		return n, nil
	}

	// A symmetry proof pins the upper bound, and thus the nimber, to 0.
	if p.MaxNimber() == 0 {
		e.cache[key] = 0
		return 0, nil
	}

	// Every successor has strictly fewer tokens, so its nimber is below
	// NumNodes and the mex cannot exceed the successor count.
	seen := make([]bool, p.NumNodes()+1)
	for _, successor := range p.SplitMoves() {
		n, err := e.NimberOfComponents(successor)
		if err != nil {
			return 0, err
		}
		if n < len(seen) {
			seen[n] = true
		}
	}
	result := mex(seen)
	e.cache[key] = result
	return result, nil
}

// mex returns the least index not marked in seen.
func mex(seen []bool) int {
	for i, hit := range seen {
		if !hit {
			return i
		}
	}
	return len(seen)
}
