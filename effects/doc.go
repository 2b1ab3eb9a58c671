// Package effects runs the side effects of live interpreters inside scoped handlers.
//
// A handler is registered on a context with WithXxxEffectHandler and lives until the
// returned teardown is called. Code holding the context performs effects through
// PerformResumableEffect (request/response, result resumed on a channel) or
// FireAndForgetEffect (one-way, e.g. logging). Handlers run on their own worker
// goroutines, optionally partitioned by the payload's PartitionKey.
//
// The computation abstraction business logic is written against lives in
// effects/monad; the task and log subpackages are the effects a live interpreter
// uses to give those computations real asynchronous I/O.
//
// Example:
//
//	ctx, endOfLog := log.WithZapEffectHandler(ctx, 16, logger)
//	defer endOfLog()
//
//	ctx, endOfTask := task.WithEffectHandler(ctx, effects.NewEffectScopeConfig(16, 4))
//	defer endOfTask()
package effects
