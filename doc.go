// Package gostreams provides combinators over streams of elements.
// A stream is a ProducerFunc: calling it starts a goroutine that sends elements through a channel
// and closes the channel once it is done.
//
// Streams are constructed from slices (Produce, AsStream), existing channels (ProduceChannel),
// or other streams (Join, Concat).
//
// Operators wrap a stream in a new one: DistinctUntilChanged drops consecutive duplicates,
// ReduceStream folds a stream into a single element, ConcatWith appends one stream to another,
// and Debounce samples a busy stream at a fixed interval.
//
// Finally, the elements are consumed by terminals such as Each, Reduce, ReduceSlice and First.
//
// Stream operations will receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire stream, closing every stage. A caller-supplied function fails a stream by
// canceling it with the failure as the cause; the terminal then returns that cause.
// Producer implementations must be prepared to be canceled at any time by checking the provided context.Context.
//
// Futures and their combinators live in the future sub-package.
package gostreams
