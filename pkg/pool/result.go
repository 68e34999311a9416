package pool

import (
	"context"
	"sync/atomic"
)

// Result is a one-shot completion cell. The executing worker writes the
// value exactly once and then flips the done flag; because the value store
// happens before the atomic flag store, any reader that observes
// Ready() == true is guaranteed to see the final value.
//
// The cell is write-once, read-many: the flag never flips back to false
// and the value never changes after publication.
type Result struct {
	value int
	done  atomic.Bool
	ready chan struct{}
}

func newResult() *Result {
	return &Result{ready: make(chan struct{})}
}

// complete publishes the value. Called exactly once, by the worker that
// owns the task.
func (r *Result) complete(v int) {
	r.value = v
	r.done.Store(true)
	close(r.ready)
}

// Ready reports whether the computation has finished and the value may be
// read. Safe to poll from any goroutine
func (r *Result) Ready() bool {
	return r.done.Load()
}

// Value returns the computed value and true once the result is ready,
// and the zero value and false before that
func (r *Result) Value() (int, bool) {
	if !r.done.Load() {
		return 0, false
	}
	return r.value, true
}

// Wait blocks until the result is ready or ctx is done. It is the
// blocking alternative to polling Ready
func (r *Result) Wait(ctx context.Context) (int, error) {
	select {
	case <-r.ready:
		return r.value, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
