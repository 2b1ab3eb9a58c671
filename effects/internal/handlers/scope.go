package handlers

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// effectScope owns the workers of one registered handler.
//
// Senders hold the read side of gate while they enqueue; Close takes the write side
// before closing the queues, so no message can arrive after the workers drained.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	stopped    <-chan struct{}
	cancelFn   context.CancelFunc
	teardown   func()

	gate      sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func newEffectScope[T any](
	ctx context.Context,
	dispatcher WorkerDispatcher[T],
	cancelFn context.CancelFunc,
	teardown func(),
) *effectScope[T] {
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		stopped:    ctx.Done(),
		cancelFn:   cancelFn,
		teardown:   teardown,
	}
}

// enqueue hands msg to its worker.
// It fails with ErrHandlerClosed once the scope is ending, or with ctx.Err().
func (es *effectScope[T]) enqueue(ctx context.Context, msg T) error {
	es.gate.RLock()
	defer es.gate.RUnlock()
	if es.closed {
		return ErrHandlerClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-es.stopped:
		return ErrHandlerClosed
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return nil
	}
}

// Close cancels running work, refuses new messages, waits until the workers handled
// everything already queued and runs the teardown. Calls after the first are no-ops.
func (es *effectScope[T]) Close() {
	es.closeOnce.Do(func() {
		// senders blocked on a full queue give up once the scope context ends
		es.cancelFn()

		es.gate.Lock()
		es.closed = true
		es.gate.Unlock()

		es.dispatcher.Close()
		<-es.dispatcher.Done()
		es.teardown()
	})
}
