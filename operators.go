package gostreams

import (
	"context"
	"errors"
)

// EqualFunc returns true if elements a and b are equivalent.
type EqualFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, a T, b T) bool

// ErrNoInitialElement is the error used to fail a stream created by ReduceStream when its upstream producer
// closes without producing any element, so there is no element to start the reduction from.
var ErrNoInitialElement = errors.New("no initial element")

// DistinctUntilChanged returns a producer that produces the elements produced by prod, in order,
// dropping every element that is equal to the element produced before it.
func DistinctUntilChanged[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DistinctUntilChangedFunc(prod, func(_ context.Context, _ context.CancelCauseFunc, a T, b T) bool {
		return a == b
	})
}

// DistinctUntilChangedFunc returns a producer that produces the elements produced by prod, in order,
// dropping every element for which equal reports equivalence with the last element produced.
// The first element is always produced. equal is called with the new element first.
func DistinctUntilChangedFunc[T any](prod ProducerFunc[T], equal EqualFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			var prev T
			hasPrev := false

			for elem := range ch {
				if hasPrev {
					eq := equal(ctx, cancel, elem, prev)

					if contextDone(ctx) {
						return
					}

					if eq {
						continue
					}
				}

				select {
				case outCh <- elem:
					prev = elem
					hasPrev = true

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// ReduceStream returns a producer that folds all elements produced by prod into a single element, using the
// first element as the initial accumulator, and produces it once prod is finished.
// If prod does not produce any element, the stream's context will be canceled with ErrNoInitialElement.
func ReduceStream[T any](prod ProducerFunc[T], reduce AccumulatorFunc[T, T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			first, ok := <-ch
			if !ok {
				if !contextDone(ctx) {
					cancel(ErrNoInitialElement)
				}

				return
			}

			reduceInto[T, T](ctx, cancel, ch, outCh, first, 1, reduce)
		}()

		return outCh
	}
}

// ReduceStreamFrom returns a producer that folds all elements produced by prod into accumulator seed,
// and produces the final accumulator once prod is finished.
// If prod does not produce any element, seed is produced.
func ReduceStreamFrom[T any, A any](prod ProducerFunc[T], seed A, reduce AccumulatorFunc[T, A]) ProducerFunc[A] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan A {
		ch := prod(ctx, cancel)

		outCh := make(chan A)

		go func() {
			defer close(outCh)

			reduceInto[T, A](ctx, cancel, ch, outCh, seed, 0, reduce)
		}()

		return outCh
	}
}

// reduceInto folds the remaining elements of ch into acc, and sends the result to outCh.
// Nothing is sent if the stream's context is canceled.
func reduceInto[T any, A any](ctx context.Context, cancel context.CancelCauseFunc, ch <-chan T, outCh chan<- A,
	acc A, index uint64, reduce AccumulatorFunc[T, A],
) {
	for elem := range ch {
		acc = reduce(ctx, cancel, elem, index, acc)

		if contextDone(ctx) {
			return
		}

		index++
	}

	if contextDone(ctx) {
		return
	}

	select {
	case outCh <- acc:

	case <-ctx.Done():
	}
}

// ConcatWith returns a producer that produces all elements produced by prod, followed by all elements
// produced by other. other is not called before prod is finished.
func ConcatWith[T any](prod ProducerFunc[T], other ProducerFunc[T]) ProducerFunc[T] {
	return Join(prod, other)
}

// Concat returns a producer that produces all elements produced by first, followed by all elements
// produced by second.
func Concat[T any](first ProducerFunc[T], second ProducerFunc[T]) ProducerFunc[T] {
	return ConcatWith(first, second)
}
