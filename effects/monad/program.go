package monad

// Step is a computation whose result has already been captured by the caller,
// so only the interpreter value and the failure flow out of it.
type Step[F any] func(F) (F, error)

// Program is the sequencing contract every interpreter satisfies.
//
// Of and Bind are shared by all interpreters; Fork is where they differ. It runs steps
// that do not depend on each other and returns the interpreter value to continue with.
// A live interpreter may run them concurrently, a pure one threads its world through
// them in order. The first failure wins either way.
type Program[F any] interface {
	Fork(steps ...Step[F]) (F, error)
}

// Sequential runs steps one after another, stopping at the first failure.
// Pure interpreters use it as their Fork.
func Sequential[F any](env F, steps ...Step[F]) (F, error) {
	for _, step := range steps {
		next, err := step(env)
		env = next
		if err != nil {
			return env, err
		}
	}
	return env, nil
}

// Pair holds the values of two computations combined with Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip runs fa and fb through the interpreter's Fork and pairs their values.
// Neither computation may depend on the other; the order they run in is up to F.
func Zip[F Program[F], A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, Pair[A, B]] {
	return func(env F) (Pair[A, B], F, error) {
		var p Pair[A, B]
		next, err := env.Fork(
			func(env F) (F, error) {
				a, env, err := fa(env)
				p.First = a
				return env, err
			},
			func(env F) (F, error) {
				b, env, err := fb(env)
				p.Second = b
				return env, err
			},
		)
		if err != nil {
			return Pair[A, B]{}, next, err
		}
		return p, next, nil
	}
}
