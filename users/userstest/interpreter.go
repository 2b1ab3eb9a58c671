// Package userstest provides a pure interpreter for the users capabilities.
//
// Computations run against a Fixture instead of real services: capability calls read
// from it or return an updated copy, and a failure stops the chain and comes back as a
// value next to the fixture it left behind.
package userstest

import (
	"github.com/on-the-ground/tagless_go/effects/monad"
	"github.com/on-the-ground/tagless_go/users"
)

// Interpreter is the pure users.Env. Each step receives the Interpreter holding the
// current fixture and returns the one holding the next.
type Interpreter struct {
	fixture Fixture
}

var _ users.Env[Interpreter] = Interpreter{}

func NewInterpreter(f Fixture) Interpreter {
	return Interpreter{fixture: f}
}

// Fixture is the world as of this step.
func (i Interpreter) Fixture() Fixture {
	return i.fixture
}

// Fork runs steps in order; nothing here is concurrent.
func (i Interpreter) Fork(steps ...monad.Step[Interpreter]) (Interpreter, error) {
	return monad.Sequential(i, steps...)
}

// Raise keeps failures as they are so tests can compare them directly.
func (Interpreter) Raise(e error) error {
	return e
}

func (Interpreter) ProfileFor(id users.UserID) monad.Kind[Interpreter, users.UserProfile] {
	return func(env Interpreter) (users.UserProfile, Interpreter, error) {
		p, ok := env.fixture.Profile(id)
		if !ok {
			return users.UserProfile{}, env, env.Raise(users.UserNotFound{UserID: id})
		}
		return p, env, nil
	}
}

func (Interpreter) OrdersFor(id users.UserID) monad.Kind[Interpreter, []users.Order] {
	return func(env Interpreter) ([]users.Order, Interpreter, error) {
		return env.fixture.UserOrders(id), env, nil
	}
}

func (Interpreter) Error(e error) monad.Kind[Interpreter, monad.Unit] {
	return func(env Interpreter) (monad.Unit, Interpreter, error) {
		return monad.Unit{}, Interpreter{fixture: env.fixture.LogError(e)}, nil
	}
}

// Result is either the value of a computation or the failure that stopped it.
type Result[A any] struct {
	Value A
	Err   error
}

func (r Result[A]) Failed() bool {
	return r.Err != nil
}

// Run evaluates k against f and returns its result together with the final fixture.
func Run[A any](f Fixture, k monad.Kind[Interpreter, A]) (Result[A], Fixture) {
	a, env, err := k(NewInterpreter(f))
	if err != nil {
		return Result[A]{Err: err}, env.Fixture()
	}
	return Result[A]{Value: a}, env.Fixture()
}
