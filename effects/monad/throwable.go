package monad

// MonadThrowable extends Program with raising failures.
//
// Raise decides how a failure looks once it is inside the computation. A pure
// interpreter returns e as is, a live one may annotate it, but errors.Is(Raise(e), e)
// must hold.
type MonadThrowable[F any] interface {
	Program[F]
	Raise(e error) error
}

// ThrowError is a computation that fails with e and leaves the interpreter untouched.
func ThrowError[F MonadThrowable[F], A any](e error) Kind[F, A] {
	return func(env F) (A, F, error) {
		var zero A
		return zero, env, env.Raise(e)
	}
}

// OnError runs fa and, only if it failed, runs handler on the failure before
// returning that same failure again.
//
// It is log-and-rethrow, not recovery: the handler's value and any failure of its own
// are dropped, only the interpreter value it produced is kept.
func OnError[F, A any](fa Kind[F, A], handler func(error) Kind[F, Unit]) Kind[F, A] {
	return func(env F) (A, F, error) {
		a, env, err := fa(env)
		if err == nil {
			return a, env, nil
		}
		_, env, _ = handler(err)(env)
		var zero A
		return zero, env, err
	}
}
