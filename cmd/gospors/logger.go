package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gospors/gospors/internal/config"
)

// newLogger builds the process logger: JSON in production, text when asked.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("service", "gospors", "environment", cfg.Environment), nil
}
