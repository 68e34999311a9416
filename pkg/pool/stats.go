package pool

// Stats is a point-in-time snapshot of the pool. It exists for
// diagnostics only; reading it never affects scheduling.
type Stats struct {
	Workers     int           `json:"workers"`
	FreeWorkers int           `json:"free_workers"`
	PerWorker   []WorkerStats `json:"per_worker"`
}

// WorkerStats describes one worker at snapshot time
type WorkerStats struct {
	ID       int  `json:"id"`
	Free     bool `json:"free"`
	QueueLen int  `json:"queue_len"`
}

// Stats collects a snapshot of every worker. The snapshot is not a
// consistent cut across workers: each worker is sampled independently
func (p *Pool) Stats() Stats {
	s := Stats{
		Workers:   len(p.workers),
		PerWorker: make([]WorkerStats, 0, len(p.workers)),
	}
	for _, w := range p.workers {
		free := w.free.Load()
		if free {
			s.FreeWorkers++
		}
		s.PerWorker = append(s.PerWorker, WorkerStats{
			ID:       w.id,
			Free:     free,
			QueueLen: w.queueLen(),
		})
	}
	return s
}
