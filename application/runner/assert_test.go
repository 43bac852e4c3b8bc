package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectSucceedsImmediately(t *testing.T) {
	result := expect(context.Background(), "always true", time.Second, 10*time.Millisecond,
		func(ctx context.Context) (bool, string, error) {
			return true, "", nil
		})

	require.True(t, result.OK)
	assert.Empty(t, result.Observed)
	assert.Less(t, result.Elapsed, 100*time.Millisecond)
}

func TestExpectSucceedsAfterPolling(t *testing.T) {
	calls := 0
	result := expect(context.Background(), "eventually true", time.Second, 5*time.Millisecond,
		func(ctx context.Context) (bool, string, error) {
			calls++
			return calls >= 3, "not yet", nil
		})

	require.True(t, result.OK)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestExpectFailureWaitsFullTimeout(t *testing.T) {
	timeout := 100 * time.Millisecond
	interval := 10 * time.Millisecond

	result := expect(context.Background(), "never true", timeout, interval,
		func(ctx context.Context) (bool, string, error) {
			return false, "still waiting", nil
		})

	require.False(t, result.OK)
	assert.Equal(t, "still waiting", result.Observed)
	// Failure is reported no earlier than the timeout and not much later
	// than one extra poll interval.
	assert.GreaterOrEqual(t, result.Elapsed, timeout)
	assert.Less(t, result.Elapsed, timeout+interval+100*time.Millisecond)
}

func TestExpectCarriesProbeError(t *testing.T) {
	result := expect(context.Background(), "probe errors", 50*time.Millisecond, 10*time.Millisecond,
		func(ctx context.Context) (bool, string, error) {
			return false, "", errors.New("page gone")
		})

	require.False(t, result.OK)
	assert.Equal(t, "page gone", result.Observed)
}

func TestExpectStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	result := expect(ctx, "canceled", 5*time.Second, 10*time.Millisecond,
		func(ctx context.Context) (bool, string, error) {
			return false, "not yet", nil
		})

	require.False(t, result.OK)
	assert.Less(t, time.Since(start), time.Second)
	assert.Contains(t, result.Observed, "context canceled")
}

func TestExpectDefaultsTimeout(t *testing.T) {
	result := expect(context.Background(), "default timeout", 0, time.Millisecond,
		func(ctx context.Context) (bool, string, error) {
			return true, "", nil
		})
	require.True(t, result.OK)
}
