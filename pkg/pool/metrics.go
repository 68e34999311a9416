package pool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pool's Prometheus instrumentation. All methods are
// safe on a nil receiver, so an unmetered pool pays only a nil check.
type Metrics struct {
	SubmissionsTotal prometheus.Counter
	RejectionsTotal  prometheus.Counter
	TasksCompleted   prometheus.Counter
	BusyWorkers      prometheus.Gauge
	TaskDuration     prometheus.Histogram
}

// NewMetrics creates the pool metric set and registers it with registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.With(registerer).NewCounter(
			prometheus.CounterOpts{
				Name: "evalpool_submissions_total",
				Help: "Total number of Submit calls",
			},
		),
		RejectionsTotal: promauto.With(registerer).NewCounter(
			prometheus.CounterOpts{
				Name: "evalpool_rejections_total",
				Help: "Submit calls that found no free worker (transient, retried by callers)",
			},
		),
		TasksCompleted: promauto.With(registerer).NewCounter(
			prometheus.CounterOpts{
				Name: "evalpool_tasks_completed_total",
				Help: "Tasks whose result cell was published",
			},
		),
		BusyWorkers: promauto.With(registerer).NewGauge(
			prometheus.GaugeOpts{
				Name: "evalpool_busy_workers",
				Help: "Workers currently claimed by a task",
			},
		),
		TaskDuration: promauto.With(registerer).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "evalpool_task_duration_seconds",
				Help:    "Wall time spent executing a computation",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *Metrics) incSubmitted() {
	if m == nil {
		return
	}
	m.SubmissionsTotal.Inc()
}

func (m *Metrics) incRejected() {
	if m == nil {
		return
	}
	m.RejectionsTotal.Inc()
}

func (m *Metrics) workerClaimed() {
	if m == nil {
		return
	}
	m.BusyWorkers.Inc()
}

func (m *Metrics) workerFreed() {
	if m == nil {
		return
	}
	m.BusyWorkers.Dec()
}

func (m *Metrics) observeCompleted(d time.Duration) {
	if m == nil {
		return
	}
	m.TasksCompleted.Inc()
	m.TaskDuration.Observe(d.Seconds())
}
