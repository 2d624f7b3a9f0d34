package gostreams

import "time"

// Clock is the source of time used by time-based operators such as Debounce.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// Option configures an operator.
type Option func(*config)

type config struct {
	clock Clock
}

type systemClock struct{}

// WithClock sets the clock used by an operator.
// A nil clock is ignored.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		clock: systemClock{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Now returns time.Now(), which carries a monotonic clock reading.
func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
