package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "text_summaries", cfg.Database.Name)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Fetch.MaxBodyBytes)
	assert.Equal(t, 3, cfg.Summarizer.SentenceCount)
	assert.Equal(t, 4, cfg.Worker.Count)
	assert.Equal(t, 64, cfg.Worker.QueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("SUMMARIZER_SENTENCE_COUNT", "5")
	t.Setenv("WORKER_COUNT", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 5, cfg.Summarizer.SentenceCount)
	assert.Equal(t, 8, cfg.Worker.Count)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"should reject out-of-range port":       {key: "SERVER_PORT", value: "70000"},
		"should reject zero sentence count":     {key: "SUMMARIZER_SENTENCE_COUNT", value: "0"},
		"should reject negative worker count":   {key: "WORKER_COUNT", value: "-1"},
		"should reject zero queue size":         {key: "WORKER_QUEUE_SIZE", value: "0"},
		"should reject min conns over max":      {key: "DB_MIN_CONNS", value: "100"},
		"should reject negative max body bytes": {key: "FETCH_MAX_BODY_BYTES", value: "-5"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDatabaseConfig_ConnString(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "summarizer",
		Password: "secret",
		Name:     "summaries",
	}

	assert.Equal(t,
		"host=db port=5433 user=summarizer password=secret dbname=summaries sslmode=disable",
		d.ConnString())
}
