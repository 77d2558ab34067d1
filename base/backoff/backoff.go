package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for an increasing duration on each call, capped at limit.
// Sleeping respects context cancellation.
type Backoff struct {
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	next         func(count int, start time.Duration) time.Duration
}

func newBackoff(next func(int, time.Duration) time.Duration, start, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit, next: next}
	b.Reset()
	return b
}

// NewLinear grows the wait by start on every round
func NewLinear(start, limit time.Duration) *Backoff {
	return newBackoff(func(count int, start time.Duration) time.Duration {
		return time.Duration(count) * start
	}, start, limit)
}

// NewExponential doubles the wait on every round
func NewExponential(start, limit time.Duration) *Backoff {
	return newBackoff(func(count int, start time.Duration) time.Duration {
		return (1 << count) * start
	}, start, limit)
}

func (b *Backoff) Reset() {
	b.count = 0
	b.NextDuration = b.nextDuration()
}

func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-t.C:
		b.count++
		b.NextDuration = b.nextDuration()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) nextDuration() time.Duration {
	d := b.next(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}
