// Package pool implements a fixed-size worker pool for independent
// two-argument integer computations. Each worker is a persistent goroutine
// with its own private FIFO queue; results are published through one-shot
// completion cells with a guaranteed value-before-flag ordering.
//
// Admission is non-blocking: Submit either claims a free worker or fails
// with ErrNoFreeWorker, a transient error the caller retries. SubmitWait
// wraps that retry loop with bounded backoff.
//
// The pool is deliberately minimal. It does not resize, drain, shut down,
// cancel tasks, or isolate faults: a computation that panics is a caller
// bug and crashes the process.
package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/evalio/evalpool/pkg/logging"
	"github.com/evalio/evalpool/pkg/retry"
)

// Config configures a Pool
type Config struct {
	// Workers is the number of persistent worker goroutines to start.
	// Must be positive; the pool never resizes after construction.
	Workers int

	// Logger receives diagnostic output. Optional: when nil, diagnostics
	// are discarded. The sink never affects scheduling.
	Logger logging.Logger

	// Metrics receives pool instrumentation. Optional: when nil, the
	// pool runs unmetered.
	Metrics *Metrics

	// Retry is the backoff policy used by SubmitWait between admission
	// attempts. The zero value selects retry.DefaultPolicy.
	Retry retry.Policy
}

// Pool is a fixed collection of workers plus the admission operation.
// The worker set is sized at construction and immutable afterwards.
type Pool struct {
	workers []*worker
	logger  logging.Logger
	metrics *Metrics
	retry   retry.Policy
}

// New creates a pool of cfg.Workers workers, each starting its execution
// loop immediately. The constructor does not wait for readiness: a fresh
// worker parks on its empty queue, which is already a consistent state.
func New(cfg Config) (*Pool, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("pool: %w (got %d)", ErrInvalidWorkerCount, cfg.Workers)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	policy := cfg.Retry
	if policy == (retry.Policy{}) {
		policy = retry.DefaultPolicy()
	}

	p := &Pool{
		workers: make([]*worker, 0, cfg.Workers),
		logger:  logger,
		metrics: cfg.Metrics,
		retry:   policy,
	}
	for i := 0; i < cfg.Workers; i++ {
		w := newWorker(i, logger, cfg.Metrics)
		p.workers = append(p.workers, w)
		go w.run()
	}

	logger.Infof("pool: started %d workers", cfg.Workers)
	return p, nil
}

// Submit scans workers in index order and hands the computation to the
// first one it can claim. On success it returns the task's result cell;
// the claimed worker is committed to the task until it completes.
//
// When every worker is busy, Submit returns ErrNoFreeWorker with zero
// side effects: no flag changed and no queue grew. That failure is
// transient and retry-safe, never a permanent rejection.
func (p *Pool) Submit(fn Computation, a, b int) (*Result, error) {
	if fn == nil {
		return nil, ErrNilComputation
	}

	p.metrics.incSubmitted()
	for _, w := range p.workers {
		if !w.claim() {
			continue
		}
		// Gauge moves before the task is visible to the worker so a fast
		// completion cannot decrement it first
		p.metrics.workerClaimed()
		t := newTask(fn, a, b)
		w.enqueue(t)
		p.logger.Debugf("pool: task %s scheduled on worker %d", t.id, w.id)
		return t.res, nil
	}

	p.metrics.incRejected()
	return nil, ErrNoFreeWorker
}

// SubmitWait submits with bounded backoff until a worker frees up or ctx
// is done. It is the blocking convenience over Submit's retry contract;
// callers that want to interleave other work between attempts keep using
// Submit directly.
func (p *Pool) SubmitWait(ctx context.Context, fn Computation, a, b int) (*Result, error) {
	var res *Result
	err := p.retry.Do(ctx, func() error {
		r, err := p.Submit(fn, a, b)
		if err != nil {
			if errors.Is(err, ErrNoFreeWorker) {
				return err
			}
			return retry.Permanent(err)
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Workers returns the fixed worker count
func (p *Pool) Workers() int {
	return len(p.workers)
}
