package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger returns a JSON logger for format "json" and a text logger otherwise.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
