package effects

import (
	"context"

	"github.com/on-the-ground/tagless_go/effects/internal/handlers"
	"github.com/on-the-ground/tagless_go/effects/internal/helper"
	sharedHelper "github.com/on-the-ground/tagless_go/shared/helper"
	"go.uber.org/zap"

	effectmodel "github.com/on-the-ground/tagless_go/effects/internal/model"
)

// EffectScopeConfig sizes the workers behind a handler scope.
type EffectScopeConfig = effectmodel.EffectScopeConfig

// NewEffectScopeConfig returns a config with non-positive values replaced by 1.
func NewEffectScopeConfig(bufferSize, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}

// ErrHandlerClosed is resumed to effects performed after their handler's scope ended.
var ErrHandlerClosed = handlers.ErrHandlerClosed

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler supports hash-based partitioning via PartitionKey(), so payloads with
// the same key are handled in order by the same worker.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler and returns
// the channel its result is resumed on.
//
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P any, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := sharedHelper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging. Payloads still queued when the scope
// ends are handled before the teardown runs.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := sharedHelper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
