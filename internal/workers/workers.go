package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker and blocks until all of them have returned. The
// first non-nil error cancels the remaining workers and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	err := g.Wait()
	if err != nil && w.logger != nil {
		w.logger.Err(err).Str("func", "*Workers.Run").Msg("background worker stopped with error")
	}
	return err
}

// jobWorker adapts a Job to the Worker interface.
type jobWorker struct {
	job      Job
	interval time.Duration
}

// FromJob wraps job so that it runs for the lifetime of the Run context.
func FromJob(job Job, interval time.Duration) Worker {
	return &jobWorker{job: job, interval: interval}
}

func (j *jobWorker) Run(ctx context.Context) error {
	j.job.Start(ctx, j.interval)
	<-ctx.Done()
	j.job.Stop()
	return nil
}

// Func adapts an ordinary function to the Worker interface.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
