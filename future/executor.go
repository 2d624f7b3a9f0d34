package future

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Executor runs tasks asynchronously.
type Executor interface {
	// Go runs fn asynchronously. It must not block the caller.
	Go(fn func())
}

// GoExecutor is an Executor that runs each task in a new goroutine.
type GoExecutor struct{}

// Pool is an Executor that runs at most a limited number of tasks at the same time.
// Go never blocks: a task submitted while the pool is full waits in its own goroutine until a slot is free.
//
// A task running in a Pool must not wait for another task of the same Pool, which includes awaiting futures
// started in the Pool after it. Once all slots are held by waiting tasks, the waited-for tasks never start.
type Pool struct {
	slots *semaphore.Weighted
	tasks sync.WaitGroup
}

// Go implements Executor.
func (GoExecutor) Go(fn func()) {
	go fn()
}

// NewPool returns a Pool that runs at most limit tasks at the same time.
// If limit <= 0, the number of tasks is not limited.
func NewPool(limit int) *Pool {
	pool := Pool{}

	if limit > 0 {
		pool.slots = semaphore.NewWeighted(int64(limit))
	}

	return &pool
}

// Go implements Executor.
func (p *Pool) Go(fn func()) {
	p.tasks.Add(1)

	go func() {
		defer p.tasks.Done()

		if p.slots != nil {
			// cannot fail, the context is never canceled
			_ = p.slots.Acquire(context.Background(), 1)
			defer p.slots.Release(1)
		}

		fn()
	}()
}

// Wait blocks until all tasks submitted to the pool are finished.
func (p *Pool) Wait() {
	p.tasks.Wait()
}
