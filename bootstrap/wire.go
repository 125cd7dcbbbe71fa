package bootstrap

import (
	"context"
	"log/slog"

	"text-summarizer/config"
	"text-summarizer/driver"
	"text-summarizer/handler"
	"text-summarizer/repository"
	"text-summarizer/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	DBPool         *pgxpool.Pool
	SummaryHandler *handler.SummaryHandler
	HealthHandler  *handler.HealthHandler
	Dispatcher     service.JobDispatcher
	Logger         *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	dbPool, err := driver.Init(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := driver.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	summaryRepo := repository.NewSummaryRepository(dbPool, log)

	fetcher := service.NewHTTPFetcher(cfg.Fetch, log)
	extractor := service.NewArticleExtractor(log)
	summarizer := service.NewExtractiveSummarizer(cfg.Summarizer, log)
	runner := service.NewJobRunner(fetcher, extractor, summarizer, summaryRepo, log)
	dispatcher := service.NewJobDispatcher(runner, cfg.Worker.Count, cfg.Worker.QueueSize, log)

	summaryHandler := handler.NewSummaryHandler(summaryRepo, dispatcher, log)
	healthHandler := handler.NewHealthHandler(dbPool, log)

	cleanup := func() {
		dbPool.Close()
	}

	return &Dependencies{
		DBPool:         dbPool,
		SummaryHandler: summaryHandler,
		HealthHandler:  healthHandler,
		Dispatcher:     dispatcher,
		Logger:         log,
	}, cleanup, nil
}
