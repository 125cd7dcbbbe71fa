// ABOUTME: Domain-level sentinel errors for the text-summarizer service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Pipeline errors. All of them are terminal for a job: a failed step
// aborts the whole job with no retry.
var (
	// ErrFetchFailed indicates the source document could not be retrieved
	// (network failure, timeout, or non-success HTTP status)
	ErrFetchFailed = errors.New("failed to fetch source document")

	// ErrNoExtractableBody indicates the fetched document contains no
	// parseable article body
	ErrNoExtractableBody = errors.New("no extractable article body")

	// ErrEmptyDocument indicates the extracted text is empty and cannot
	// be summarized
	ErrEmptyDocument = errors.New("document is empty")
)

// Persistence errors
var (
	// ErrSummaryNotFound indicates the requested summary record does not exist
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrPersistenceFailed indicates the record store rejected a write
	ErrPersistenceFailed = errors.New("failed to persist summary")
)

// Validation errors
var (
	// ErrInvalidRequest indicates the request format is invalid
	ErrInvalidRequest = errors.New("invalid request format")

	// ErrInvalidURL indicates the submitted URL is not an absolute
	// http(s) URL
	ErrInvalidURL = errors.New("url must be an absolute http(s) URL")
)
