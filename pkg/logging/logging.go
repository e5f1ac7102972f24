// Package logging builds the slog logger used across cosmic. Records are
// written through zerolog.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing zerolog JSON lines to w at level and above.
func New(w io.Writer, level slog.Level) *slog.Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	handler := slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler()
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenFile returns a logger appending to path, plus a closer for the file.
// An empty path yields a discarding logger, since the terminal UI owns the
// screen.
func OpenFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}

// Console returns a human readable logger on w for the print commands.
func Console(w io.Writer, level slog.Level) *slog.Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	handler := slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler()
	return slog.New(handler)
}
