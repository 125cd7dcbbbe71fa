package driver

import (
	"context"
	"fmt"

	"text-summarizer/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Init creates the PostgreSQL connection pool used as the record store.
func Init(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbPool, nil
}

// EnsureSchema creates the text_summaries table when it does not exist.
// The summary column defaults to empty: rows are created before their
// background job runs and updated in place on success.
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS text_summaries (
			id BIGSERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := dbPool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}
