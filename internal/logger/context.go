// Package logger builds zap loggers and carries them through contexts.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext extracts a logger from the context, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}
