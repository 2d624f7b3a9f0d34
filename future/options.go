package future

// Option configures how a future's task is started.
type Option func(*config)

type config struct {
	executor    Executor
	lazy        bool
	concurrency int
}

// WithExecutor sets the executor the task is started on.
// A nil executor is ignored.
func WithExecutor(executor Executor) Option {
	return func(c *config) {
		if executor != nil {
			c.executor = executor
		}
	}
}

// WithLazyStart defers starting the task until the future is first awaited, or its Done channel is requested.
func WithLazyStart() Option {
	return func(c *config) {
		c.lazy = true
	}
}

// WithConcurrency limits the number of elements FlatMap and ConcatMap map at the same time.
// If n <= 0, all elements are mapped at the same time, which is the default.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		executor: GoExecutor{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
