package future

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Zip returns a future that is completed with the result of calling zipper with the values of f1 and f2.
// If f1 or f2 fails, the new future fails with the first error observed.
// If zipper returns an error, the new future fails with it.
func Zip[T1 any, T2 any, R any](ctx context.Context, f1 *Future[T1], f2 *Future[T2], zipper func(T1, T2) (R, error),
	opts ...Option,
) *Future[R] {
	return Go(ctx, func(ctx context.Context) (R, error) {
		var zero R

		value1, err := f1.Await(ctx)
		if err != nil {
			return zero, err
		}

		value2, err := f2.Await(ctx)
		if err != nil {
			return zero, err
		}

		return zipper(value1, value2)
	}, opts...)
}

// ZipWith is like Zip, for two futures of the same type.
func (f *Future[T]) ZipWith(ctx context.Context, other *Future[T], zipper func(T, T) (T, error), opts ...Option) *Future[T] {
	return Zip(ctx, f, other, zipper, opts...)
}

// Map returns a future that is completed with the result of calling mapper with the value of f.
// If mapper returns an error, the new future fails with it.
func Map[T any, R any](ctx context.Context, f *Future[T], mapper func(T) (R, error), opts ...Option) *Future[R] {
	return Go(ctx, func(ctx context.Context) (R, error) {
		value, err := f.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}

		return mapper(value)
	}, opts...)
}

// FlatMap returns a future that is completed with the results of calling mapper for each element of the value of f.
// The elements are mapped concurrently, and the results are in the order the calls finished,
// which is not necessarily the order of the elements.
//
// If a call to mapper returns an error or panics, the new future fails, and elements that have not been mapped
// yet are skipped.
//
// WithExecutor only applies to the task that awaits f and collects the results. Each element is mapped in its
// own goroutine; use WithConcurrency to bound the number of elements mapped at the same time.
func FlatMap[K any, R any](ctx context.Context, f *Future[[]K], mapper func(K) (R, error), opts ...Option) *Future[[]R] {
	concurrency := applyOptions(opts).concurrency

	return Go(ctx, func(ctx context.Context) ([]R, error) {
		elems, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}

		result := make([]R, 0, len(elems))
		mu := sync.Mutex{}

		err = forEach(ctx, elems, concurrency, func(_ int, elem K) error {
			value, err := mapper(elem)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			result = append(result, value)

			return nil
		})

		if err != nil {
			return nil, err
		}

		return result, nil
	}, opts...)
}

// ConcatMap is like FlatMap, but the results are in the order of the elements.
// The elements are still mapped concurrently.
func ConcatMap[K any, R any](ctx context.Context, f *Future[[]K], mapper func(K) (R, error), opts ...Option) *Future[[]R] {
	concurrency := applyOptions(opts).concurrency

	return Go(ctx, func(ctx context.Context) ([]R, error) {
		elems, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}

		result := make([]R, len(elems))

		err = forEach(ctx, elems, concurrency, func(idx int, elem K) error {
			value, err := mapper(elem)
			if err != nil {
				return err
			}

			result[idx] = value

			return nil
		})

		if err != nil {
			return nil, err
		}

		return result, nil
	}, opts...)
}

// forEach calls each for each element of elems concurrently, with at most limit calls at the same time.
// It returns once all calls are finished. If a call fails or panics, or ctx is canceled, calls that have not
// started yet are skipped, and the first error is returned.
func forEach[K any](ctx context.Context, elems []K, limit int, each func(idx int, elem K) error) error {
	grp, grpCtx := errgroup.WithContext(ctx)

	if limit > 0 {
		grp.SetLimit(limit)
	}

	for idx, elem := range elems {
		idx, elem := idx, elem

		grp.Go(func() error {
			if grpCtx.Err() != nil {
				return context.Cause(grpCtx)
			}

			_, err := protect(func() (struct{}, error) {
				return struct{}{}, each(idx, elem)
			})

			return err
		})
	}

	return grp.Wait()
}
