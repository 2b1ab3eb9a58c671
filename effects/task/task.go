// Package task runs asynchronous single-shot work through a partitioned resumable effect.
//
// A live interpreter awaits each capability call here instead of calling its service
// directly, so every call runs on a handler-owned goroutine and can be abandoned when
// either the caller's context or the handler scope ends.
package task

import (
	"context"
	"errors"

	"github.com/on-the-ground/tagless_go/effects"
	"github.com/on-the-ground/tagless_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/tagless_go/effects/internal/model"
)

// ErrNoResult is returned when the handler ended without resuming the task.
var ErrNoResult = errors.New("task ended without a result")

// Payload is one unit of asynchronous work.
// Tasks sharing a Key run in order on the same worker.
type Payload struct {
	Key string
	ctx context.Context
	run func(context.Context) error
}

func (p Payload) PartitionKey() string {
	if p.Key == "" {
		return "unpartitioned"
	}
	return p.Key
}

// WithEffectHandler registers the task handler.
// The returned function ends the scope; tasks still queued are run with a canceled context.
func WithEffectHandler(
	ctx context.Context,
	config effects.EffectScopeConfig,
) (context.Context, func() context.Context) {
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		effectmodel.EffectTask,
		handle,
	)
}

func handle(scopeCtx context.Context, payload Payload) (struct{}, error) {
	runCtx, cancel := context.WithCancel(payload.ctx)
	defer cancel()
	stop := context.AfterFunc(scopeCtx, cancel)
	defer stop()

	done := make(chan error, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		done <- payload.run(runCtx)
	}()
	<-ready

	select {
	case err := <-done:
		return struct{}{}, err
	case <-runCtx.Done():
		return struct{}{}, runCtx.Err()
	}
}

// Effect schedules run and returns the channel its outcome is resumed on.
// Panics if no task handler is registered on ctx.
func Effect(
	ctx context.Context,
	key string,
	run func(context.Context) error,
) <-chan handlers.ResumableResult[struct{}] {
	return effects.PerformResumableEffect[Payload, struct{}](ctx, effectmodel.EffectTask, Payload{
		Key: key,
		ctx: ctx,
		run: run,
	})
}

// Await runs fn as a task and blocks until it finishes or ctx ends.
func Await[R any](ctx context.Context, key string, fn func(context.Context) (R, error)) (R, error) {
	var (
		zero R
		res  R
	)
	resultCh := Effect(ctx, key, func(ctx context.Context) error {
		var err error
		res, err = fn(ctx)
		return err
	})

	select {
	case r, ok := <-resultCh:
		if !ok {
			return zero, ErrNoResult
		}
		if r.Err != nil {
			return zero, r.Err
		}
		// the handler resumes only after fn returned, so res is settled here
		return res, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
