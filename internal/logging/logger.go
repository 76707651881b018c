package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeycumines/termfolio/internal/config"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger. With a log file configured it writes
// JSON to a rotating file; otherwise it writes text to fallback, or discards
// when fallback is nil. The returned closer must be closed on exit.
func New(settings config.LogSettings, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if settings.File != "" {
		w, err := NewRotatingFileWriter(settings.File, settings.MaxSizeMB, settings.MaxFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", settings.File, err)
		}
		return slog.New(slog.NewJSONHandler(w, opts)), w, nil
	}

	if fallback == nil {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	return slog.New(slog.NewTextHandler(fallback, opts)), nopCloser{}, nil
}
