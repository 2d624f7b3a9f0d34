package gostreams

import (
	"context"
	"time"
)

// DefaultDebounceWait is the interval used by Debounce if no positive interval is given.
const DefaultDebounceWait = 300 * time.Millisecond

// Debounce returns a producer that produces the elements produced by prod, at most once per wait interval.
//
// An element that arrives at least wait after the last produced one is produced immediately.
// An element that arrives too early is held until the interval has elapsed. At that point, all elements
// that are already available from prod replace it, and only the most recent one is produced.
// While prod keeps producing faster than wait, elements are therefore produced at a fixed rate.
//
// If wait <= 0, DefaultDebounceWait is used.
func Debounce[T any](prod ProducerFunc[T], wait time.Duration, opts ...Option) ProducerFunc[T] {
	if wait <= 0 {
		wait = DefaultDebounceWait
	}

	clock := applyOptions(opts).clock

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			var nextDeadline time.Time

			for elem := range ch {
				now := clock.Now()

				if now.Before(nextDeadline) {
					select {
					case <-clock.After(nextDeadline.Sub(now)):

					case <-ctx.Done():
						return
					}

					elem = mostRecent(ch, elem)
					nextDeadline = nextDeadline.Add(wait)
				} else {
					nextDeadline = now.Add(wait)
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// mostRecent receives all elements that are available from ch without waiting,
// and returns the last one, or elem if there are none.
func mostRecent[T any](ch <-chan T, elem T) T {
	for {
		select {
		case next, ok := <-ch:
			if !ok {
				return elem
			}

			elem = next

		default:
			return elem
		}
	}
}
