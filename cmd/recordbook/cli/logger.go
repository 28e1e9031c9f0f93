// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger on stderr for CLI
// commands. When stderr is a terminal it uses slog.TextHandler for
// human-readable output; when piped or redirected it uses
// slog.JSONHandler, matching the service's log format. verbose lowers
// the level from info to debug.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(params.Verbose).With("command", "show", "id", id)
func NewCommandLogger(verbose bool) *slog.Logger {
	return newCommandLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), verbose)
}

func newCommandLogger(w io.Writer, terminal, verbose bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		options.Level = slog.LevelDebug
	}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// OpenFileLogger returns a debug-level JSON logger writing to path,
// which is created or truncated, and a function that closes the file.
// An empty path returns a logger that discards everything.
//
// The viewer logs here instead of stderr: anything written to stderr
// while the alternate screen is active corrupts the display.
func OpenFileLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return newJSONLogger(file), file.Close, nil
}

func newJSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
