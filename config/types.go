package config

import "time"

// Config aggregates all service configuration blocks. It is built once
// at startup and passed to constructors; there is no process-wide
// cached settings object.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Fetch      FetchConfig      `json:"fetch"`
	Summarizer SummarizerConfig `json:"summarizer"`
	Worker     WorkerConfig     `json:"worker"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8000"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host            string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port            string        `json:"port" env:"DB_PORT" default:"5432"`
	User            string        `json:"user" env:"DB_USER" default:"postgres"`
	Password        string        `json:"password" env:"DB_PASSWORD" default:"postgres"`
	Name            string        `json:"name" env:"DB_NAME" default:"text_summaries"`
	MaxConns        int32         `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `json:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

type FetchConfig struct {
	Timeout      time.Duration `json:"timeout" env:"FETCH_TIMEOUT" default:"30s"`
	UserAgent    string        `json:"user_agent" env:"FETCH_USER_AGENT" default:"Mozilla/5.0 (compatible; TextSummarizerBot/1.0)"`
	MaxBodyBytes int64         `json:"max_body_bytes" env:"FETCH_MAX_BODY_BYTES" default:"10485760"`
}

type SummarizerConfig struct {
	// SentenceCount is the number of sentences a summary keeps.
	// Documents with fewer sentences are returned whole.
	SentenceCount int `json:"sentence_count" env:"SUMMARIZER_SENTENCE_COUNT" default:"3"`
}

type WorkerConfig struct {
	// Count is the number of concurrent summarization workers.
	Count int `json:"count" env:"WORKER_COUNT" default:"4"`
	// QueueSize bounds the number of submitted-but-unstarted jobs.
	// Submissions past capacity are dropped with a warning.
	QueueSize int `json:"queue_size" env:"WORKER_QUEUE_SIZE" default:"64"`
}
