// Package cli implements the dsakit command-line interface.
//
// Every algorithm package in the module gets a subcommand that parses its
// input from arguments, runs the algorithm and prints the result:
//
//   - list: reverse, middle, palindrome, cycle, remove-kth, zero-sum, dedup, reorder
//   - rotate: circular array rotation
//   - subsets: power sets with a selectable strategy
//   - matrix: rotate, transpose, mul
//   - grid: traversals and searches
//   - hash: presence table queries
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
