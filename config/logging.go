package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// ParseLevel converts a level name (case-insensitive) into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
}

// NewSlogHandler creates the slog.Handler described by the logging section, writing to w.
func (c LoggingConfig) NewSlogHandler(w io.Writer) (slog.Handler, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}

	switch c.Format {
	case FormatJSON:
		return slog.NewJSONHandler(w, options), nil
	case FormatText:
		return slog.NewTextHandler(w, options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.Format)
	}
}
