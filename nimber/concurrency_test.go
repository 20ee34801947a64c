// Package nimber_test: cancellation progress under a concurrent canceller.
package nimber_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grundy/builder"
	"github.com/katalvlaran/grundy/nimber"
)

// TestCancellation_Progress: once the flag fires, an in-flight search
// unwinds promptly instead of finishing the full tree. The 5×7 grid
// has no mirror and a search space far beyond the cancellation window,
// so the evaluation cannot complete before the flag flips.
func TestCancellation_Progress(t *testing.T) {
	p, err := builder.Rect(5, 7).BuildOne()
	require.NoError(t, err)

	eval := nimber.New()
	done := make(chan error, 1)
	go func() {
		_, err := eval.Nimber(p)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	eval.CancelFlag().Cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, nimber.ErrCancelled))
	case <-time.After(30 * time.Second):
		t.Fatal("evaluation did not unwind after cancellation")
	}
}

// TestCancelFlag_ManyReadersOneWriter: concurrent reads race only with
// one atomic write; the flag settles at cancelled.
func TestCancelFlag_ManyReadersOneWriter(t *testing.T) {
	var flag nimber.CancelFlag
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for {
				select {
				case <-stop:
					return
				default:
					_ = flag.Cancelled()
				}
			}
		}()
	}
	flag.Cancel()
	close(stop)
	assert.True(t, flag.Cancelled())

	// Cancel is idempotent.
	flag.Cancel()
	assert.True(t, flag.Cancelled())
}
