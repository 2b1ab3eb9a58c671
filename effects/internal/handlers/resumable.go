package handlers

import (
	"context"
	"errors"

	effectmodel "github.com/on-the-ground/tagless_go/effects/internal/model"
	"go.uber.org/zap"
)

// ErrHandlerClosed is resumed to callers whose effect reached a handler after its scope ended.
var ErrHandlerClosed = errors.New("effect handler is closed")

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			ctx,
			NewPartitionedQueue(
				ctx,
				config.NumWorkers,
				config.BufferSize,
				func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
					resume(ctx, msg, handleFn)
				},
			),
			cancelFn,
			teardown,
		),
	}
}

func resume[P any, R any](
	ctx context.Context,
	msg ResumableEffectMessage[P, R],
	handleFn func(context.Context, P) (R, error),
) {
	// ResumeCh has room for exactly this one result.
	msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload))
	close(msg.ResumeCh)
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect queues payload and returns the channel its single result is resumed on.
// If the payload cannot be queued the channel carries the reason instead.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) <-chan ResumableResult[R] {
	resumeCh := make(chan ResumableResult[R], 1)
	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	if err := rh.enqueue(ctx, msg); err != nil {
		if errors.Is(err, ErrHandlerClosed) {
			zap.L().Warn("effect sent to a closed handler",
				zap.String("effectId", rh.EffectId),
				zap.Any("payload", payload),
			)
		}
		resumeCh <- ResumableResult[R]{Err: err}
		close(resumeCh)
	}
	return resumeCh
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
