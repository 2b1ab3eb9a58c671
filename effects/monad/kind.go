package monad

// Unit is the value of computations run only for their effect.
type Unit = struct{}

// Kind is a computation in interpreter F that yields an A.
//
// Running it hands over the current interpreter value and receives the result, the
// interpreter value to continue with and, on failure, a non-nil error.
type Kind[F, A any] func(F) (A, F, error)

// Of lifts a plain value into a computation that leaves the interpreter untouched.
func Of[F, A any](a A) Kind[F, A] {
	return func(env F) (A, F, error) {
		return a, env, nil
	}
}

// Bind runs fa and feeds its value into f.
// If fa fails, f is never invoked and the failure is returned with the interpreter
// value fa stopped at.
func Bind[F, A, B any](fa Kind[F, A], f func(A) Kind[F, B]) Kind[F, B] {
	return func(env F) (B, F, error) {
		a, env, err := fa(env)
		if err != nil {
			var zero B
			return zero, env, err
		}
		return f(a)(env)
	}
}

// Map transforms the value of fa with a pure function.
func Map[F, A, B any](fa Kind[F, A], f func(A) B) Kind[F, B] {
	return Bind(fa, func(a A) Kind[F, B] {
		return Of[F](f(a))
	})
}

// Then runs fa for its effect and continues with fb.
func Then[F, A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, B] {
	return Bind(fa, func(A) Kind[F, B] {
		return fb
	})
}

// Void discards the value of fa.
func Void[F, A any](fa Kind[F, A]) Kind[F, Unit] {
	return Map(fa, func(A) Unit { return Unit{} })
}
