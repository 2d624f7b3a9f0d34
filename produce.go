package gostreams

import (
	"context"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

// ProducerFunc returns a channel of elements for a stream.
// The channel is closed once the producer is finished, or the stream's context is canceled.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// AsStream returns a producer that produces the elements of seq, in order.
// seq is copied, so the caller may reuse it once AsStream returns.
func AsStream[E any](seq []E) ProducerFunc[E] {
	return Produce(slices.Clone(seq))
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
// The new producer must not be called more than once, doing so will panic.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	started := atomic.Bool{}

	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		if started.Swap(true) {
			panic("producer called multiple times")
		}

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Join returns a producer that produces the elements produced by the given producers, in order.
// A producer is only called once the previous one has closed its channel.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, prod := range producers {
				if contextDone(ctx) {
					return
				}

				for elem := range prod(ctx, cancel) {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}
