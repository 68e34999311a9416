package pool

import (
	"github.com/google/uuid"
)

// Computation is a caller-supplied pure function of two integers.
//
// A computation must not panic: the pool provides no fault isolation, and
// a panicking computation takes its worker goroutine (and the process)
// down with it. Guarding inputs (for example, a divisor of zero) is the
// caller's responsibility.
type Computation func(a, b int) int

// task is one unit of submitted work: the computation, its arguments, and
// the result cell the worker publishes into. The id exists only for
// diagnostics and never influences scheduling.
type task struct {
	id  string
	fn  Computation
	a   int
	b   int
	res *Result
}

func newTask(fn Computation, a, b int) *task {
	return &task{
		id:  uuid.New().String(),
		fn:  fn,
		a:   a,
		b:   b,
		res: newResult(),
	}
}
