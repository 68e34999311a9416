package pool

import (
	"errors"
)

var (
	// ErrNoFreeWorker is returned by Submit when every worker is busy.
	// The failure is transient and leaves no side effects: no worker was
	// claimed and no queue grew, so the caller is expected to retry
	ErrNoFreeWorker = errors.New("no free worker")

	// ErrInvalidWorkerCount is returned by New for a non-positive count
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrNilComputation is returned by Submit for a nil computation
	ErrNilComputation = errors.New("computation cannot be nil")
)
