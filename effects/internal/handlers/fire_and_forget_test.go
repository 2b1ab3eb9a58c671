package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/tagless_go/effects/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var receivedPayload string
	done := make(chan bool)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			receivedPayload = msg
			done <- true
		},
		func() {}, // no-op teardown
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, "hello")

	select {
	case <-done:
		assert.Equal(t, "hello", receivedPayload)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetHandler_CloseHandlesPendingThenTearsDown(t *testing.T) {
	ctx := context.Background()

	var got []string
	tornDown := false
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			got = append(got, msg)
		},
		func() { tornDown = true },
	)

	handler.FireAndForgetEffect(ctx, "a")
	handler.FireAndForgetEffect(ctx, "b")
	handler.Close()

	assert.Equal(t, []string{"a", "b"}, got)
	assert.True(t, tornDown)
}

func TestFireAndForgetHandler_SendAfterCloseDoesNotPanic(t *testing.T) {
	ctx := context.Background()

	called := false
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		1,
		func(ctx context.Context, msg string) {
			called = true
		},
		func() {},
	)
	handler.Close()

	assert.NotPanics(t, func() {
		handler.FireAndForgetEffect(ctx, "should-not-send")
	})
	assert.False(t, called, "handler should not have been called")
}
