package service

import (
	"context"
	"log/slog"

	"text-summarizer/domain"
	"text-summarizer/repository"
)

// jobRunner orchestrates one summarization job: fetch, extract,
// summarize, persist. Every step failure is terminal: the record keeps
// its empty summary and nothing is retried.
type jobRunner struct {
	fetcher     Fetcher
	extractor   Extractor
	summarizer  Summarizer
	summaryRepo repository.SummaryRepository
	logger      *slog.Logger
}

// NewJobRunner creates a job runner.
func NewJobRunner(
	fetcher Fetcher,
	extractor Extractor,
	summarizer Summarizer,
	summaryRepo repository.SummaryRepository,
	logger *slog.Logger,
) JobRunner {
	return &jobRunner{
		fetcher:     fetcher,
		extractor:   extractor,
		summarizer:  summarizer,
		summaryRepo: summaryRepo,
		logger:      logger,
	}
}

// Run executes the pipeline for one record. The caller has already
// responded to the original request, so errors are logged with the
// failing step and otherwise swallowed. On success the record store is
// updated exactly once.
func (r *jobRunner) Run(ctx context.Context, id int64, url string) {
	r.transition(ctx, id, domain.JobStateFetching)

	raw, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.fail(ctx, id, url, domain.JobStateFetching, err)
		return
	}

	r.transition(ctx, id, domain.JobStateExtracting)

	text, err := r.extractor.Extract(raw, url)
	if err != nil {
		r.fail(ctx, id, url, domain.JobStateExtracting, err)
		return
	}

	r.transition(ctx, id, domain.JobStateSummarizing)

	summaryText, err := r.summarizer.Summarize(text)
	if err != nil {
		r.fail(ctx, id, url, domain.JobStateSummarizing, err)
		return
	}

	r.transition(ctx, id, domain.JobStatePersisting)

	if err := r.summaryRepo.UpdateSummaryText(ctx, id, summaryText); err != nil {
		r.fail(ctx, id, url, domain.JobStatePersisting, err)
		return
	}

	r.logger.InfoContext(ctx, "summarization job completed",
		"id", id,
		"url", url,
		"state", domain.JobStateDone,
		"summary_length", len(summaryText))
}

func (r *jobRunner) transition(ctx context.Context, id int64, state domain.JobState) {
	r.logger.DebugContext(ctx, "job state transition", "id", id, "state", state)
}

func (r *jobRunner) fail(ctx context.Context, id int64, url string, step domain.JobState, err error) {
	r.logger.ErrorContext(ctx, "summarization job failed",
		"id", id,
		"url", url,
		"state", domain.JobStateFailed,
		"failed_step", step,
		"error", err)
}
