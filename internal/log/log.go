// Package log holds the shared slog logger. Commands stay quiet by default;
// set log_level (or TGELD_LOG_LEVEL) to debug to watch the store work.
package log

import (
	"log/slog"
	"os"
	"strings"
)

var logger = newLogger(slog.LevelWarn)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Setup replaces the shared logger with one at the given level name.
func Setup(level string) {
	logger = newLogger(ParseLevel(level))
}

// ParseLevel maps a level name to a slog level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Get returns the shared logger.
func Get() *slog.Logger {
	return logger
}

// With returns the shared logger tagged with a component name.
func With(component string) *slog.Logger {
	return logger.With("component", component)
}
