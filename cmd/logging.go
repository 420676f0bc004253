package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger. JSON in production, text elsewhere;
// the level defaults to INFO in production and DEBUG otherwise.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(cfg)}

	format := strings.ToLower(cfg.LogFormat)
	if format == "" {
		format = "text"
		if cfg.IsProduction() {
			format = "json"
		}
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("env", cfg.AppEnv)
}

// IsProduction reports whether APP_ENV names a production environment.
func (c Config) IsProduction() bool {
	return strings.HasPrefix(strings.ToLower(c.AppEnv), "prod")
}

func logLevel(cfg Config) slog.Level {
	level := cfg.LogLevel
	if level == "" {
		if cfg.IsProduction() {
			return slog.LevelInfo
		}
		return slog.LevelDebug
	}

	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
