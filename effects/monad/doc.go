// Package monad provides the computation abstraction business logic is written against.
//
// Go has no higher-kinded types, so a computation is encoded as a function of the
// interpreter itself:
//
//	type Kind[F, A any] func(F) (A, F, error)
//
// The interpreter value F is threaded through every step. A pure interpreter keeps its
// world inside F and hands back an updated copy; an effectful interpreter returns itself
// unchanged and performs its I/O while the step runs. Either way the same composed
// computation runs unmodified under both.
//
// Interpreters plug in through two contracts:
//   - Program: how independent steps are combined (Fork).
//   - MonadThrowable: Program plus how a raised failure is represented (Raise).
//
// Sequencing (Of, Bind, Map, Then) short-circuits on the first failure: once a step
// fails, no continuation runs and the failure propagates untouched. OnError is the only
// combinator that looks at a failure, and it never recovers from one.
//
// Example:
//
//	func greet[F monad.Program[F]](c Console[F]) monad.Kind[F, monad.Unit] {
//	    return monad.Bind(c.GetStrLn(), func(name string) monad.Kind[F, monad.Unit] {
//	        return c.PutStrLn("hello " + name)
//	    })
//	}
package monad
