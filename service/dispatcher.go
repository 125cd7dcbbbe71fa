package service

import (
	"context"
	"log/slog"
	"sync"

	"text-summarizer/domain"
)

// jobDispatcher runs summarization jobs on a fixed pool of workers fed
// by a bounded queue. One job's panic or failure never affects another.
type jobDispatcher struct {
	jobs     chan domain.SummaryJob
	runner   JobRunner
	logger   *slog.Logger
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewJobDispatcher creates the dispatcher and starts its workers.
func NewJobDispatcher(runner JobRunner, workers, queueSize int, logger *slog.Logger) JobDispatcher {
	d := &jobDispatcher{
		jobs:   make(chan domain.SummaryJob, queueSize),
		runner: runner,
		logger: logger,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Submit enqueues a job and returns immediately. A full queue drops the
// job with a warning; the record then stays pending, which is the same
// observable state as a failed job. Submit must not be called after
// Stop.
func (d *jobDispatcher) Submit(id int64, url string) bool {
	select {
	case d.jobs <- domain.SummaryJob{ID: id, URL: url}:
		d.logger.Info("summarization job submitted", "id", id, "url", url)
		return true
	default:
		d.logger.Warn("job queue full, dropping job", "id", id, "url", url)
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (d *jobDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *jobDispatcher) worker() {
	defer d.wg.Done()

	for job := range d.jobs {
		d.runJob(job)
	}
}

// runJob isolates a single job: a panic is logged and the worker moves
// on to the next job.
func (d *jobDispatcher) runJob(job domain.SummaryJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("summarization job panicked", "id", job.ID, "url", job.URL, "panic", r)
		}
	}()

	d.runner.Run(context.Background(), job.ID, job.URL)
}
