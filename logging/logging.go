// SPDX-License-Identifier: MIT

// Package logging builds the structured loggers used across sparsecsr.
//
// Loggers are plain *slog.Logger values. Library packages accept one through
// their options and fall back to Discard, so nothing is printed unless the
// caller asks for it. The csrbench driver builds its logger with New:
//
//	logger := logging.New(logging.Config{
//	    Level:   slog.LevelInfo,
//	    Format:  logging.FormatText,
//	    Service: "csrbench",
//	})
//	logger.Info("populated", "stored", 123, "target", 128)
//
// Output defaults to stderr so that dumps written to stdout stay clean.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned by ValidateFormat for unrecognized formats.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config describes a logger.
type Config struct {
	// Level is the minimum level emitted.
	Level slog.Level
	// Format is FormatText or FormatJSON. Empty means text.
	Format string
	// Output receives log lines. Nil means os.Stderr.
	Output io.Writer
	// Service, when set, is attached to every record as "service".
	Service string
}

// New returns a logger for cfg. Unknown formats fall back to text.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, FormatJSON) {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("ParseLevel(%q): %w", s, ErrUnknownLevel)
}

// ValidateFormat accepts FormatText, FormatJSON or the empty string.
func ValidateFormat(s string) error {
	switch strings.ToLower(s) {
	case "", FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("ValidateFormat(%q): %w", s, ErrUnknownFormat)
}
