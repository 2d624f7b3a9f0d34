package gostreams

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
)

// fakeClock is a Clock that only moves forward when advanced.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []fakeTimer
	waiting chan struct{}
}

type fakeTimer struct {
	deadline time.Time
	ch       chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:     time.Unix(1_000_000, 0),
		waiting: make(chan struct{}, 16),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)

	if d <= 0 {
		ch <- c.now
		return ch
	}

	c.timers = append(c.timers, fakeTimer{deadline: c.now.Add(d), ch: ch})
	c.waiting <- struct{}{}

	return ch
}

// Advance moves the clock forward by d, firing all timers that are due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)

	pending := c.timers[:0]

	for _, timer := range c.timers {
		if timer.deadline.After(c.now) {
			pending = append(pending, timer)
			continue
		}

		timer.ch <- c.now
	}

	c.timers = pending
}

// waitForTimer blocks until a timer has been created.
func (c *fakeClock) waitForTimer() {
	<-c.waiting
}

// channelProducer returns a producer that produces the elements sent to ch.
// Unlike ProduceChannel, no goroutine sits between ch and the consumer, so elements buffered in ch
// are available without waiting.
func channelProducer[T any](ch <-chan T) ProducerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) <-chan T {
		return ch
	}
}

func TestDebounce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	clock := newFakeClock()

	inCh := make(chan int, 10)

	outCh := Debounce(channelProducer[int](inCh), 300*time.Millisecond, WithClock(clock))(ctx, cancel)

	// first element is produced immediately
	inCh <- 1
	is.Equal(<-outCh, 1)

	// a burst within the interval is held, and only the latest element survives
	inCh <- 2
	inCh <- 3
	inCh <- 4
	clock.waitForTimer()
	clock.Advance(300 * time.Millisecond)
	is.Equal(<-outCh, 4)

	// after an idle gap, the next element is produced immediately
	clock.Advance(time.Second)
	inCh <- 5
	is.Equal(<-outCh, 5)

	// an element arriving exactly at the deadline is produced immediately
	clock.Advance(300 * time.Millisecond)
	inCh <- 6
	is.Equal(<-outCh, 6)

	close(inCh)

	_, ok := <-outCh
	is.True(!ok)
}

func TestDebounce_FixedRate(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	clock := newFakeClock()

	inCh := make(chan int, 10)

	outCh := Debounce(channelProducer[int](inCh), 100*time.Millisecond, WithClock(clock))(ctx, cancel)

	inCh <- 1
	is.Equal(<-outCh, 1)

	inCh <- 2
	clock.waitForTimer()
	clock.Advance(100 * time.Millisecond)
	is.Equal(<-outCh, 2)

	// the next deadline is measured from the previous deadline, not from the time the element arrived
	inCh <- 3
	clock.waitForTimer()
	clock.Advance(99 * time.Millisecond)

	select {
	case elem := <-outCh:
		t.Fatalf("element %d produced before the deadline", elem)

	default:
	}

	clock.Advance(time.Millisecond)
	is.Equal(<-outCh, 3)

	close(inCh)

	_, ok := <-outCh
	is.True(!ok)
}

func TestDebounce_DefaultWait(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	clock := newFakeClock()

	inCh := make(chan int, 10)

	outCh := Debounce(channelProducer[int](inCh), 0, WithClock(clock))(ctx, cancel)

	inCh <- 1
	is.Equal(<-outCh, 1)

	inCh <- 2
	clock.waitForTimer()
	clock.Advance(DefaultDebounceWait - time.Millisecond)

	select {
	case elem := <-outCh:
		t.Fatalf("element %d produced before the deadline", elem)

	default:
	}

	clock.Advance(time.Millisecond)
	is.Equal(<-outCh, 2)

	close(inCh)
}

func TestDebounce_CloseWhileWaiting(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	clock := newFakeClock()

	inCh := make(chan int, 10)

	outCh := Debounce(channelProducer[int](inCh), time.Second, WithClock(clock))(ctx, cancel)

	inCh <- 1
	is.Equal(<-outCh, 1)

	inCh <- 2
	inCh <- 3
	close(inCh)
	clock.waitForTimer()
	clock.Advance(time.Second)

	is.Equal(<-outCh, 3)

	_, ok := <-outCh
	is.True(!ok)
}

func TestDebounce_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	clock := newFakeClock()

	inCh := make(chan int, 10)

	outCh := Debounce(channelProducer[int](inCh), time.Second, WithClock(clock))(ctx, cancel)

	inCh <- 1
	is.Equal(<-outCh, 1)

	inCh <- 2
	clock.waitForTimer()

	cancel(nil)

	_, ok := <-outCh
	is.True(!ok)
}

func TestDebounce_SystemClock(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Debounce(Produce([]int{1, 2, 3, 4, 5}), 20*time.Millisecond)

	result, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.True(len(result) >= 2)
	is.Equal(result[0], 1)
	is.Equal(result[len(result)-1], 5)

	for i := 1; i < len(result); i++ {
		is.True(result[i] > result[i-1])
	}
}

func TestDebounce_Empty(t *testing.T) {
	is := is.New(t)

	count, err := Count(context.Background(), Debounce(Produce[int](), time.Second, WithClock(newFakeClock())))

	is.NoErr(err)
	is.Equal(count, uint64(0))
}
