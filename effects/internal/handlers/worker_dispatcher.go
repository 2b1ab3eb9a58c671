package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/tagless_go/effects/internal/model"
)

// --- common interface ---

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Close closes every queue. Nothing may be sent once it is called.
	Close()
	// Done is closed once every worker has drained its queue and exited.
	Done() <-chan struct{}
}

// runWorker handles messages until ch is closed and empty.
func runWorker[T any](ctx context.Context, ch chan T, handleFn func(context.Context, T)) {
	for msg := range ch {
		handleFn(ctx, msg)
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     chan struct{}
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Close() {
	close(q.effectCh)
}

func (q singleQueue[T]) Done() <-chan struct{} {
	return q.done
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	done := make(chan struct{})
	ready := make(chan struct{})

	go func(ch chan T) {
		defer close(done)
		close(ready)
		runWorker(ctx, ch, handleFn)
	}(effCh)

	<-ready

	return singleQueue[T]{effectCh: effCh, done: done}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	done      chan struct{}
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func (pq partitionedQueue[T]) Close() {
	for _, ch := range pq.effectChs {
		close(ch)
	}
}

func (pq partitionedQueue[T]) Done() <-chan struct{} {
	return pq.done
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	done := make(chan struct{})
	ready := sync.WaitGroup{}
	exited := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		exited.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			defer exited.Done()
			ready.Done()
			runWorker(ctx, ch, handleFn)
		}(ch)
		channels[i] = ch
	}
	ready.Wait()
	go func() {
		exited.Wait()
		close(done)
	}()
	return partitionedQueue[T]{effectChs: channels, done: done}
}
