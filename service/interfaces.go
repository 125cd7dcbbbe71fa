package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// Fetcher retrieves the raw document bytes for a URL. A single failed
// attempt aborts the whole job; there is no retry.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Extractor parses a fetched document into a plain-text article body,
// discarding markup and boilerplate.
type Extractor interface {
	Extract(raw []byte, srcURL string) (string, error)
}

// Summarizer reduces extracted text to a short extractive synopsis.
// It is deterministic: identical input always yields identical output.
type Summarizer interface {
	Summarize(text string) (string, error)
}

// JobRunner executes one summarization job end to end. Run never
// returns an error: the submitting layer already answered its caller,
// so failures are logged and swallowed.
type JobRunner interface {
	Run(ctx context.Context, id int64, url string)
}

// JobDispatcher is the fire-and-forget submission boundary. Submit
// enqueues a job and returns immediately; the dispatcher owns job
// lifecycle and failure isolation.
type JobDispatcher interface {
	Submit(id int64, url string) bool
	Stop()
}
