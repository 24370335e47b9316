package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/sgaunet/pr-report/internal/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleep records requested delays instead of waiting.
type recordingSleep struct {
	delays []time.Duration
	err    error
}

func (r *recordingSleep) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return r.err
}

func TestPoll_StopsOnFirstSuccess(t *testing.T) {
	rec := &recordingSleep{}
	calls := 0

	ok := retry.Poll(context.Background(), retry.Policy{Attempts: 3, Delay: 2 * time.Second, Sleep: rec.sleep},
		func(_ context.Context, attempt int) bool {
			calls++
			return attempt == 2
		})

	assert.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{2 * time.Second}, rec.delays)
}

func TestPoll_ExhaustsBudget(t *testing.T) {
	rec := &recordingSleep{}
	var attempts []int

	ok := retry.Poll(context.Background(), retry.Policy{Attempts: 3, Delay: time.Second, Sleep: rec.sleep},
		func(_ context.Context, attempt int) bool {
			attempts = append(attempts, attempt)
			return false
		})

	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3}, attempts)
	// No sleep after the final attempt.
	assert.Len(t, rec.delays, 2)
}

func TestPoll_ZeroAttemptsStillPollsOnce(t *testing.T) {
	calls := 0
	ok := retry.Poll(context.Background(), retry.Policy{}, func(_ context.Context, _ int) bool {
		calls++
		return true
	})

	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestPoll_InterruptedSleep(t *testing.T) {
	rec := &recordingSleep{err: context.Canceled}
	calls := 0

	ok := retry.Poll(context.Background(), retry.Policy{Attempts: 5, Delay: time.Second, Sleep: rec.sleep},
		func(_ context.Context, _ int) bool {
			calls++
			return false
		})

	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestContextSleep(t *testing.T) {
	t.Run("returns after delay", func(t *testing.T) {
		require.NoError(t, retry.ContextSleep(context.Background(), time.Millisecond))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retry.ContextSleep(ctx, time.Hour)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("non positive delay", func(t *testing.T) {
		require.NoError(t, retry.ContextSleep(context.Background(), 0))
	})
}

func TestDefaultPolicy(t *testing.T) {
	p := retry.DefaultPolicy()
	assert.Equal(t, 3, p.Attempts)
	assert.Equal(t, 2*time.Second, p.Delay)
	assert.NotNil(t, p.Sleep)
}
