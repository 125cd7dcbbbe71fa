// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides defaults and validation producing an immutable Config passed at construction time
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load builds the service configuration from environment variables,
// applying defaults for anything unset. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	// Missing .env is the normal case in containers.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            envInt("SERVER_PORT", 8000),
			ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "postgres"),
			Password:        envString("DB_PASSWORD", "postgres"),
			Name:            envString("DB_NAME", "text_summaries"),
			MaxConns:        int32(envInt("DB_MAX_CONNS", 20)),
			MinConns:        int32(envInt("DB_MIN_CONNS", 2)),
			MaxConnLifetime: envDuration("DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime: envDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		},
		Fetch: FetchConfig{
			Timeout:      envDuration("FETCH_TIMEOUT", 30*time.Second),
			UserAgent:    envString("FETCH_USER_AGENT", "Mozilla/5.0 (compatible; TextSummarizerBot/1.0)"),
			MaxBodyBytes: envInt64("FETCH_MAX_BODY_BYTES", 10*1024*1024),
		},
		Summarizer: SummarizerConfig{
			SentenceCount: envInt("SUMMARIZER_SENTENCE_COUNT", 3),
		},
		Worker: WorkerConfig{
			Count:     envInt("WORKER_COUNT", 4),
			QueueSize: envInt("WORKER_QUEUE_SIZE", 64),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ConnString renders the database block as a pgx connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
