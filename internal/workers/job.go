package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
)

// Job runs a worker on a ticker until stopped.
type Job struct {
	worker Worker
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a Job for worker. The job is idle until Start is called.
func NewJob(worker Worker, logger *logger.Logger) *Job {
	return &Job{worker: worker, logger: logger}
}

// Start stops any previously running loop, then launches a goroutine that
// runs the worker every interval. If interval is zero or negative it
// defaults to one hour. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *Job) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.worker.Run(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "*Job.Start").Msg("worker run failed")
				}
			}
		}
	}()
}

// Stop cancels the running loop and blocks until it has exited. Safe to
// call when the job is not running.
func (j *Job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
