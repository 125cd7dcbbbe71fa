package config

import "fmt"

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}

	if cfg.Database.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if cfg.Database.MinConns > cfg.Database.MaxConns {
		return fmt.Errorf("database min conns (%d) exceeds max conns (%d)",
			cfg.Database.MinConns, cfg.Database.MaxConns)
	}

	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}

	if cfg.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch max body bytes must be positive")
	}

	if cfg.Summarizer.SentenceCount <= 0 {
		return fmt.Errorf("summarizer sentence count must be positive")
	}

	if cfg.Worker.Count <= 0 {
		return fmt.Errorf("worker count must be positive")
	}

	if cfg.Worker.QueueSize <= 0 {
		return fmt.Errorf("worker queue size must be positive")
	}

	return nil
}
