package repository

import (
	"context"

	"text-summarizer/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// SummaryRepository handles summary record persistence. It is the only
// writer of durable state; per-record atomicity is the database's
// single-statement guarantee, so concurrent updates to distinct
// identifiers need no coordination here.
type SummaryRepository interface {
	Create(ctx context.Context, url string) (*domain.Summary, error)
	FindByID(ctx context.Context, id int64) (*domain.Summary, error)
	FindAll(ctx context.Context) ([]*domain.Summary, error)
	Update(ctx context.Context, id int64, url string, summaryText string) (*domain.Summary, error)
	UpdateSummaryText(ctx context.Context, id int64, summaryText string) error
	Delete(ctx context.Context, id int64) (*domain.Summary, error)
}
