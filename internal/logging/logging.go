// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package logging provides structured logging configuration using slog.
// Logs always go to stderr; stdout carries only program output.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps "debug", "info", "warn", "error" to a slog level.
// Anything else is treated as info.
func ParseLevel(level string) slog.Level {
	switch level {
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

// NewLogger builds a logger writing to w.
// format: "text", "json" (anything else is text)
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetupLogger configures the default slog logger based on level and format.
// A nil w means os.Stderr.
func SetupLogger(w io.Writer, level, format string) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(NewLogger(w, level, format))
}

// WithComponent returns a logger with the component field set.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
