package users

import "github.com/on-the-ground/tagless_go/effects/monad"

// Users looks up profiles. ProfileFor fails with UserNotFound for an unknown id.
type Users[F any] interface {
	ProfileFor(id UserID) monad.Kind[F, UserProfile]
}

// Orders lists the orders owned by a user, most recent first.
// A user without orders gets an empty list, never a failure.
type Orders[F any] interface {
	OrdersFor(id UserID) monad.Kind[F, []Order]
}

// Logging records failures. Error never fails.
type Logging[F any] interface {
	Error(e error) monad.Kind[F, monad.Unit]
}

// Env is everything FetchUserInformation needs from an interpreter.
type Env[F any] interface {
	monad.MonadThrowable[F]
	Users[F]
	Orders[F]
	Logging[F]
}
