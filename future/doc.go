// Package future provides a single-assignment asynchronous result, and combinators over it.
//
// A Future is completed exactly once, by the task started with Go, with either a value or an error.
// Any number of goroutines may Await it, and all of them observe the same value or error.
//
// Futures are combined using Zip, Map, FlatMap and ConcatMap. Each combinator starts a new task that awaits
// its source futures, so it never blocks the calling goroutine, and returns a new Future for the result.
// A failed source future fails the combined future with the same error.
//
// Tasks are started on an Executor. By default, each task runs in its own goroutine; a Pool bounds the number
// of tasks running at the same time. The executor is chosen per call using WithExecutor, there is no
// process-wide default that could be changed.
package future
