package handlers

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			NewSingleQueue(
				ctx,
				bufferSize,
				func(ctx context.Context, msg FireAndForgetEffectMessage[P]) {
					handleFn(ctx, msg.Payload)
				},
			),
			cancelFn,
			teardown,
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[FireAndForgetEffectMessage[P]]
}

// FireAndForgetEffect queues payload. It is dropped when ctx ends first or the scope is closed.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	err := ffh.enqueue(ctx, FireAndForgetEffectMessage[P]{Payload: payload})
	if errors.Is(err, ErrHandlerClosed) {
		zap.L().Warn("effect sent to a closed handler",
			zap.String("effectId", ffh.EffectId),
			zap.Any("payload", payload),
		)
	}
}

type FireAndForgetEffectMessage[P any] struct {
	Payload P
}
