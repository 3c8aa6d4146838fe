package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "travel-planner"

// New constructs the process wide slog logger from LOG_LEVEL and LOG_FORMAT.
// LOG_FORMAT=text switches to a human readable handler for local runs.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// NewWithWriter builds the logger on an explicit sink.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", serviceName)
}

// parseLevel accepts the slog level names (debug, info, warn, error), case
// insensitively. Anything else logs at info.
func parseLevel(level string) slog.Leveler {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
