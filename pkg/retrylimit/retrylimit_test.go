package retrylimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr int

func (s statusErr) Error() string   { return "status" }
func (s statusErr) StatusCode() int { return int(s) }

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       2 * time.Millisecond,
		RateLimitDelay: time.Millisecond,
		Multiplier:     2,
	}
}

func TestRetryUntilSuccess(t *testing.T) {
	calls := 0
	err := WithRetryConfig(context.Background(), func() error {
		calls++
		if calls < 3 {
			return statusErr(503)
		}
		return nil
	}, nil, fastConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestFatalStopsImmediately(t *testing.T) {
	calls := 0
	boom := errors.New("forbidden")
	err := WithRetryConfig(context.Background(), func() error {
		calls++
		return Fatal(boom)
	}, nil, fastConfig(5))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestMaxAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("flaky")
	err := WithRetryConfig(context.Background(), func() error {
		calls++
		return boom
	}, nil, fastConfig(3))

	assert.ErrorIs(t, err, ErrMaxAttempts)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WithRetryConfig(ctx, func() error { return nil }, nil, fastConfig(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiterAdjusts(t *testing.T) {
	lim := NewAdaptiveLimiter(4, 1, 8, 1, 0.5)
	assert.InDelta(t, 4.0, lim.CurrentLimit(), 0.001)

	lim.RateLimited()
	assert.InDelta(t, 2.0, lim.CurrentLimit(), 0.001)
	lim.RateLimited()
	lim.RateLimited()
	assert.InDelta(t, 1.0, lim.CurrentLimit(), 0.001)

	// Success is ignored during the cooldown after a rate limit.
	lim.Success()
	assert.InDelta(t, 1.0, lim.CurrentLimit(), 0.001)

	lim.cooldown = 0
	lim.lastError = time.Time{}
	for range 20 {
		lim.Success()
	}
	assert.InDelta(t, 8.0, lim.CurrentLimit(), 0.001)
}

func TestRateLimitedResponseSlowsLimiter(t *testing.T) {
	lim := NewAdaptiveLimiter(10, 1, 10, 1, 0.5)
	calls := 0
	err := WithRetryConfig(context.Background(), func() error {
		calls++
		if calls == 1 {
			return statusErr(429)
		}
		return nil
	}, lim, fastConfig(3))

	require.NoError(t, err)
	assert.Less(t, lim.CurrentLimit(), 10.0)
}
