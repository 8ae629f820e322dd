package workers

// Workers groups the scheduler's activities so they can be cancelled in one
// call.
type Workers struct {
	workers []Worker
}

// New returns a Workers aggregate over ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Stop cancels every worker in registration order.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// Wait blocks until every worker is idle.
func (w *Workers) Wait() {
	for _, worker := range w.workers {
		worker.Wait()
	}
}
