package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// WithTestEffectHandler registers a log handler whose entries are kept in memory.
func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, end := WithZapEffectHandler(
		ctx,
		1,
		zap.New(core),
	)
	return ctx, end, logs
}
