package future

import (
	"context"
	"sync"
)

// Future is the result of an asynchronous task.
// It is completed exactly once, and is safe for use by multiple goroutines.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error

	start     func()
	startOnce sync.Once
}

// Go starts fn as a new task, and returns a future for its result.
// fn receives ctx. If ctx is already canceled when the task is about to run, fn is not called,
// and the future fails with the cause of the cancelation.
// If fn panics, the future fails with a *PanicError.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) *Future[T] {
	cfg := applyOptions(opts)

	f := &Future[T]{
		done: make(chan struct{}),
	}

	start := func() {
		cfg.executor.Go(func() {
			if ctx.Err() != nil {
				var zero T
				f.complete(zero, context.Cause(ctx))
				return
			}

			f.complete(protect(func() (T, error) {
				return fn(ctx)
			}))
		})
	}

	if cfg.lazy {
		f.start = start
		return f
	}

	start()

	return f
}

// Resolved returns a future that is already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{
		done:  make(chan struct{}),
		value: value,
	}

	close(f.done)

	return f
}

// Failed returns a future that is already completed with err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
		err:  err,
	}

	close(f.done)

	return f
}

// Await blocks until f is completed, and returns its value and error.
// If ctx is canceled first, it returns the cause of the cancelation. The task itself is not affected.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	f.trigger()

	select {
	case <-f.done:
		return f.value, f.err

	default:
	}

	select {
	case <-f.done:
		return f.value, f.err

	case <-ctx.Done():
		var zero T
		return zero, context.Cause(ctx)
	}
}

// Done returns a channel that is closed once f is completed.
func (f *Future[T]) Done() <-chan struct{} {
	f.trigger()
	return f.done
}

// Ready returns true if f is completed. It does not start a lazy future.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true

	default:
		return false
	}
}

func (f *Future[T]) trigger() {
	if f.start == nil {
		return
	}

	f.startOnce.Do(f.start)
}

func (f *Future[T]) complete(value T, err error) {
	f.value = value
	f.err = err

	close(f.done)
}
