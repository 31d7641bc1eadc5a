// Package log carries a *log.Logger through a context so that deeply nested
// code (tool handlers, fetchers) can log without global state. stdout is
// reserved for the stdio transport, so loggers must write to stderr.
package log

import (
	"context"
	"log"
)

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, falling back to the
// process default logger.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
