package monad

// Next is the outcome of one round of TailRec: either another round with a new
// state, or the final value.
type Next[S, A any] struct {
	state S
	value A
	done  bool
}

// Continue asks TailRec for another round starting from s.
func Continue[S, A any](s S) Next[S, A] {
	return Next[S, A]{state: s}
}

// Done ends TailRec with a.
func Done[S, A any](a A) Next[S, A] {
	return Next[S, A]{value: a, done: true}
}

// TailRec runs step from seed until it returns Done.
//
// Self-recursive computations ("ask again until the answer is valid") are written with
// it so each round reuses the same stack frame. There is no bound on the number of
// rounds; a failing round ends the loop.
func TailRec[F, S, A any](seed S, step func(S) Kind[F, Next[S, A]]) Kind[F, A] {
	return func(env F) (A, F, error) {
		s := seed
		for {
			next, env2, err := step(s)(env)
			env = env2
			if err != nil {
				var zero A
				return zero, env, err
			}
			if next.done {
				return next.value, env, nil
			}
			s = next.state
		}
	}
}
