package pool

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/evalio/evalpool/pkg/logging"
)

// worker owns one FIFO task queue guarded by its own mutex/cond pair, so
// no lock is shared across workers. At most one task is in flight per
// worker: the free flag is claimed atomically by the pool at submission
// time and only the worker itself sets it back to true, after popping the
// completed task.
type worker struct {
	id    int
	mu    sync.Mutex
	cond  *sync.Cond
	queue []*task
	free  atomic.Bool

	logger  logging.Logger
	metrics *Metrics
}

func newWorker(id int, logger logging.Logger, metrics *Metrics) *worker {
	w := &worker{
		id:      id,
		logger:  logger,
		metrics: metrics,
	}
	w.cond = sync.NewCond(&w.mu)
	w.free.Store(true)
	return w
}

// claim atomically takes ownership of the worker. The compare-and-swap
// makes the check-and-claim a single step, so two concurrent submitters
// can never both claim the same worker
func (w *worker) claim() bool {
	return w.free.CompareAndSwap(true, false)
}

// enqueue hands a task to a claimed worker and wakes its loop. Must only
// be called after a successful claim
func (w *worker) enqueue(t *task) {
	w.mu.Lock()
	w.queue = append(w.queue, t)
	w.mu.Unlock()
	w.cond.Signal()
}

// run is the worker's execution loop. It has no terminal state and runs
// for the lifetime of the process.
func (w *worker) run() {
	for {
		w.mu.Lock()
		for len(w.queue) == 0 {
			// Wait releases the lock while parked; the predicate is
			// re-checked on wake to tolerate spurious wakeups
			w.cond.Wait()
		}
		t := w.queue[0]
		w.mu.Unlock()

		// The computation runs unlocked. The worker is not free, so no
		// new submission can reach this queue while it executes.
		w.logger.Debugf("worker %d: starting task %s", w.id, t.id)
		start := time.Now()
		v := t.fn(t.a, t.b)
		t.res.complete(v)
		w.metrics.observeCompleted(time.Since(start))

		w.mu.Lock()
		w.queue = w.queue[1:]
		w.free.Store(true)
		w.mu.Unlock()
		w.metrics.workerFreed()
	}
}

func (w *worker) queueLen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}
