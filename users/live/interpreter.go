// Package live interprets the users capabilities against real services.
//
// Every capability call is awaited as an asynchronous task on the effects/task handler,
// independent lookups run concurrently, and failures are logged through the
// effects/log handler. Both handlers must be installed on the interpreter's context,
// see WithEffectHandlers.
package live

import (
	"context"
	"fmt"

	"github.com/on-the-ground/tagless_go/config"
	"github.com/on-the-ground/tagless_go/effects"
	"github.com/on-the-ground/tagless_go/effects/log"
	"github.com/on-the-ground/tagless_go/effects/monad"
	"github.com/on-the-ground/tagless_go/effects/task"
	"github.com/on-the-ground/tagless_go/users"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProfileService interface {
	// Profile returns users.UserNotFound for an unknown id.
	Profile(ctx context.Context, id users.UserID) (users.UserProfile, error)
}

type OrderService interface {
	Orders(ctx context.Context, owner users.UserID) ([]users.Order, error)
}

// Interpreter is the live users.Env. It carries no state of its own, so every step
// returns the Interpreter it was given.
type Interpreter struct {
	ctx      context.Context
	profiles ProfileService
	orders   OrderService
}

var _ users.Env[Interpreter] = Interpreter{}

func New(ctx context.Context, profiles ProfileService, orders OrderService) Interpreter {
	return Interpreter{ctx: ctx, profiles: profiles, orders: orders}
}

// WithEffectHandlers installs the task and log handlers the interpreter performs its
// effects through. The returned function ends both scopes, tasks first so their
// failures can still be logged.
func WithEffectHandlers(
	ctx context.Context,
	cfg config.Config,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	ctx, endOfLogHandler := log.WithZapEffectHandler(ctx, cfg.LogBufferSize, logger)
	ctx, endOfTaskHandler := task.WithEffectHandler(ctx, cfg.TaskScope())
	return ctx, func() context.Context {
		endOfTaskHandler()
		return endOfLogHandler()
	}
}

// Fork runs steps concurrently. The first failure cancels the context the others see.
func (i Interpreter) Fork(steps ...monad.Step[Interpreter]) (Interpreter, error) {
	g, gctx := errgroup.WithContext(i.ctx)
	child := i
	child.ctx = gctx
	for _, step := range steps {
		g.Go(func() error {
			_, err := step(child)
			return err
		})
	}
	return i, g.Wait()
}

// Raise records where the failure was raised; errors.Is still sees e.
func (Interpreter) Raise(e error) error {
	return errors.WithStack(e)
}

func (Interpreter) ProfileFor(id users.UserID) monad.Kind[Interpreter, users.UserProfile] {
	return func(env Interpreter) (users.UserProfile, Interpreter, error) {
		p, err := task.Await(env.ctx, "profile/"+string(id), func(ctx context.Context) (users.UserProfile, error) {
			return env.profiles.Profile(ctx, id)
		})
		if err != nil {
			return users.UserProfile{}, env, env.Raise(err)
		}
		return p, env, nil
	}
}

func (Interpreter) OrdersFor(id users.UserID) monad.Kind[Interpreter, []users.Order] {
	return func(env Interpreter) ([]users.Order, Interpreter, error) {
		orders, err := task.Await(env.ctx, "orders/"+string(id), func(ctx context.Context) ([]users.Order, error) {
			return env.orders.Orders(ctx, id)
		})
		if err != nil {
			return nil, env, env.Raise(err)
		}
		if orders == nil {
			orders = []users.Order{}
		}
		return orders, env, nil
	}
}

// Error hands e to the log handler and returns at once.
func (Interpreter) Error(e error) monad.Kind[Interpreter, monad.Unit] {
	return func(env Interpreter) (monad.Unit, Interpreter, error) {
		at := effects.Now()
		log.Effect(env.ctx, log.LogError, "computation failed", map[string]interface{}{
			"error": e,
			"from":  at.Start(),
			"to":    at.End(),
		})
		return monad.Unit{}, env, nil
	}
}

// Result is the outcome of a computation run with Run.
type Result[A any] struct {
	Value A
	Err   error
}

// Run starts k on its own goroutine and returns the channel its single result is sent on.
func Run[A any](l Interpreter, k monad.Kind[Interpreter, A]) <-chan Result[A] {
	resultCh := make(chan Result[A], 1)
	go func() {
		defer close(resultCh)
		defer func() {
			if r := recover(); r != nil {
				resultCh <- Result[A]{Err: fmt.Errorf("computation panicked: %v", r)}
			}
		}()
		a, _, err := k(l)
		resultCh <- Result[A]{Value: a, Err: err}
	}()
	return resultCh
}

// Await runs k and blocks until it is done.
func Await[A any](l Interpreter, k monad.Kind[Interpreter, A]) (A, error) {
	r := <-Run(l, k)
	return r.Value, r.Err
}
