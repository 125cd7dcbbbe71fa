package domain

import (
	"time"
)

// Summary represents a persisted summarization record.
// SummaryText is empty at creation and overwritten exactly once when a
// background job succeeds. A record whose job failed keeps an empty
// SummaryText and is indistinguishable from a pending one.
type Summary struct {
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	URL         string    `json:"url" db:"url"`
	SummaryText string    `json:"summary" db:"summary"`
	ID          int64     `json:"id" db:"id"`
}
