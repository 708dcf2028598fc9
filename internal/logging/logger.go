/*
Package logging builds the structured logger shared by the shell's components.
Diagnostics meant for the user go through the UI reporter instead.
*/
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a settings value to a slog level.
// Unknown values fall back to WARN and ok is false.
func ParseLevel(level string) (l slog.Level, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// New returns a text logger writing to w at the given level.
func New(level string, w io.Writer) *slog.Logger {
	l, ok := ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	if !ok && level != "" {
		logger.Warn("unknown log level, using warn", "log_level", level)
	}
	return logger
}

// WithComponent returns a logger with the component field set.
func WithComponent(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return logger.With(slog.String("component", name))
}
