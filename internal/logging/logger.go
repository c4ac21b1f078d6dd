// Package logging builds the slog loggers used by the CLI and viewer.
//
// Logs go to stderr by default so that trajectories and results written to
// stdout stay machine-readable.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Config selects the level, encoding and destination of a logger.
type Config struct {
	Level Level

	// JSON switches from the text handler to the JSON handler.
	JSON bool

	// Writer defaults to os.Stderr.
	Writer io.Writer

	// Service, when set, is attached to every record.
	Service string
}

// New builds a logger from config.
func New(config Config) *slog.Logger {
	w := config.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	var h slog.Handler
	if config.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	if config.Service != "" {
		logger = logger.With("service", config.Service)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(Config{Level: LevelError, Writer: io.Discard})
}
