// Package retry provides a bounded polling combinator with an injectable sleep
// so callers can be tested without real waits.
package retry

import (
	"context"
	"time"
)

const (
	// DefaultAttempts is the number of polls performed by [DefaultPolicy].
	DefaultAttempts = 3
	// DefaultDelay is the wait between two polls of [DefaultPolicy].
	DefaultDelay = 2 * time.Second
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy bounds a polling loop.
type Policy struct {
	Attempts int
	Delay    time.Duration
	// Sleep defaults to [ContextSleep] when nil.
	Sleep SleepFunc
}

// DefaultPolicy returns 3 attempts spaced by 2 seconds.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		Sleep:    ContextSleep,
	}
}

// ContextSleep waits for d, returning early with ctx.Err() if ctx is cancelled.
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll calls fn until it reports done or the attempt budget is spent. The
// delay is applied between attempts only. attempt is 1-based.
//
// Poll returns true when fn reported done, false when the budget ran out or
// the sleep was interrupted by ctx.
func Poll(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) bool) bool {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = ContextSleep
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if fn(ctx, attempt) {
			return true
		}
		if attempt == attempts {
			break
		}
		if err := sleep(ctx, p.Delay); err != nil {
			return false
		}
	}
	return false
}
