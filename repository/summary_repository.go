package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"text-summarizer/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// summaryRepository implementation.
type summaryRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewSummaryRepository creates a new summary repository.
func NewSummaryRepository(db *pgxpool.Pool, logger *slog.Logger) SummaryRepository {
	return &summaryRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new record with an empty summary and returns it with
// the database-assigned identifier.
func (r *summaryRepository) Create(ctx context.Context, url string) (*domain.Summary, error) {
	if url == "" {
		r.logger.ErrorContext(ctx, "url cannot be empty")
		return nil, fmt.Errorf("url cannot be empty")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO text_summaries (url, summary)
		VALUES ($1, '')
		RETURNING id, url, summary, created_at
	`

	var summary domain.Summary

	err := r.db.QueryRow(ctx, query, url).Scan(&summary.ID, &summary.URL, &summary.SummaryText, &summary.CreatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create summary record", "error", err, "url", url)
		return nil, fmt.Errorf("failed to create summary record: %w", err)
	}

	r.logger.InfoContext(ctx, "summary record created", "id", summary.ID, "url", url)

	return &summary, nil
}

// FindByID retrieves a single record.
func (r *summaryRepository) FindByID(ctx context.Context, id int64) (*domain.Summary, error) {
	if id <= 0 {
		r.logger.ErrorContext(ctx, "id must be positive", "id", id)
		return nil, fmt.Errorf("id must be positive")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT id, url, summary, created_at
		FROM text_summaries
		WHERE id = $1
	`

	var summary domain.Summary

	err := r.db.QueryRow(ctx, query, id).Scan(&summary.ID, &summary.URL, &summary.SummaryText, &summary.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}

		r.logger.ErrorContext(ctx, "failed to find summary record", "error", err, "id", id)

		return nil, fmt.Errorf("failed to find summary record: %w", err)
	}

	return &summary, nil
}

// FindAll lists all records, newest first.
func (r *summaryRepository) FindAll(ctx context.Context) ([]*domain.Summary, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT id, url, summary, created_at
		FROM text_summaries
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list summary records", "error", err)
		return nil, fmt.Errorf("failed to list summary records: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.Summary, 0)

	for rows.Next() {
		var summary domain.Summary
		if err := rows.Scan(&summary.ID, &summary.URL, &summary.SummaryText, &summary.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "failed to scan summary record", "error", err)
			return nil, fmt.Errorf("failed to scan summary record: %w", err)
		}

		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary records: %w", err)
	}

	return summaries, nil
}

// Update overwrites the URL and summary text of an existing record.
func (r *summaryRepository) Update(ctx context.Context, id int64, url string, summaryText string) (*domain.Summary, error) {
	if id <= 0 {
		r.logger.ErrorContext(ctx, "id must be positive", "id", id)
		return nil, fmt.Errorf("id must be positive")
	}

	if url == "" {
		r.logger.ErrorContext(ctx, "url cannot be empty")
		return nil, fmt.Errorf("url cannot be empty")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE text_summaries
		SET url = $2, summary = $3
		WHERE id = $1
		RETURNING id, url, summary, created_at
	`

	var summary domain.Summary

	err := r.db.QueryRow(ctx, query, id, url, summaryText).Scan(&summary.ID, &summary.URL, &summary.SummaryText, &summary.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}

		r.logger.ErrorContext(ctx, "failed to update summary record", "error", err, "id", id)

		return nil, fmt.Errorf("failed to update summary record: %w", err)
	}

	r.logger.InfoContext(ctx, "summary record updated", "id", id)

	return &summary, nil
}

// UpdateSummaryText writes the computed summary for a record. This is
// the single mutation a background job performs; a row that vanished
// between creation and completion surfaces ErrSummaryNotFound.
func (r *summaryRepository) UpdateSummaryText(ctx context.Context, id int64, summaryText string) error {
	if id <= 0 {
		r.logger.ErrorContext(ctx, "id must be positive", "id", id)
		return fmt.Errorf("id must be positive")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("%w: database connection is nil", domain.ErrPersistenceFailed)
	}

	query := `
		UPDATE text_summaries
		SET summary = $2
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, summaryText)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to write summary text", "error", err, "id", id)
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "summary record vanished before update", "id", id)
		return domain.ErrSummaryNotFound
	}

	r.logger.InfoContext(ctx, "summary text persisted", "id", id, "summary_length", len(summaryText))

	return nil
}

// Delete removes a record and returns it.
func (r *summaryRepository) Delete(ctx context.Context, id int64) (*domain.Summary, error) {
	if id <= 0 {
		r.logger.ErrorContext(ctx, "id must be positive", "id", id)
		return nil, fmt.Errorf("id must be positive")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		DELETE FROM text_summaries
		WHERE id = $1
		RETURNING id, url, summary, created_at
	`

	var summary domain.Summary

	err := r.db.QueryRow(ctx, query, id).Scan(&summary.ID, &summary.URL, &summary.SummaryText, &summary.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}

		r.logger.ErrorContext(ctx, "failed to delete summary record", "error", err, "id", id)

		return nil, fmt.Errorf("failed to delete summary record: %w", err)
	}

	r.logger.InfoContext(ctx, "summary record deleted", "id", id)

	return &summary, nil
}
