package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"text-summarizer/config"
	"text-summarizer/logger"
)

// Run is the main application entry point. It initializes all
// dependencies, starts the HTTP server and job workers, then waits for
// a shutdown signal.
func Run(ctx context.Context) error {
	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("Starting text-summarizer service",
		"port", cfg.Server.Port,
		"workers", cfg.Worker.Count,
		"queue_size", cfg.Worker.QueueSize)

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps, cfg.Server)
	StartHTTPServer(httpServer, cfg.Server, log)

	log.Info("Text-summarizer service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Let in-flight jobs finish before closing the pool.
	deps.Dispatcher.Stop()

	log.Info("Text-summarizer service stopped")

	return nil
}
