// Package cli implements the jsoncanvas command-line interface.
//
// This package provides commands for validating canvas files, rewriting
// them in a normalized form, summarizing their contents, and scaffolding
// new documents. The CLI is built with cobra and logs through the
// charmbracelet/log library.
//
// # Commands
//
//   - validate: decode files and report dangling edge endpoints and
//     duplicate ids
//   - fmt: re-encode a file with normalized indentation
//   - stats: per-kind node counts, edge count, and bounding box
//   - new: write a starter canvas with generated ids
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so commands and helpers share one
// configured instance.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loggerKey is the context key for the CLI logger.
type loggerKey struct{}

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger installed by withLogger, or a
// default stderr logger when none is present (e.g. in tests that invoke
// a command directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return newLogger(os.Stderr, log.InfoLevel)
}
