// ABOUTME: This file provides slog-based JSON logging for the text-summarizer service
// ABOUTME: Log level and format are environment-driven; output goes to stdout for aggregation
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide default, set by Init. Packages receive a
// *slog.Logger at construction; this exists for early startup paths.
var Logger *slog.Logger = slog.Default()

// Init builds the service logger. LOG_LEVEL selects the minimum level
// (debug, info, warn, error; default info) and LOG_FORMAT selects the
// handler (json or text; default json).
func Init() *slog.Logger {
	options := &slog.HandlerOptions{
		Level: levelFromEnv(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level values for log-forwarder compatibility.
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(level.String()))}
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		handler = slog.NewTextHandler(os.Stdout, options)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, options)
	}

	log := slog.New(handler).With("service", "text-summarizer")
	Logger = log

	return log
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
