package runner

import (
	"context"
	"time"

	"ui_verification/domain/entities"
)

const (
	// DefaultPollInterval is how often a predicate is re-evaluated while
	// waiting for it to hold.
	DefaultPollInterval = 250 * time.Millisecond

	// DefaultAssertTimeout bounds visibility assertions.
	DefaultAssertTimeout = 5 * time.Second

	// DefaultWaitTimeout bounds URL and selector waits, which tend to sit
	// behind navigation and slow backend work.
	DefaultWaitTimeout = 15 * time.Second
)

// Probe evaluates a predicate once. It reports whether the condition
// currently holds and describes the last observed state for diagnostics.
type Probe func(ctx context.Context) (ok bool, observed string, err error)

// Expect polls probe at a fixed interval until it holds or timeout is
// exhausted. It absorbs asynchronous UI updates without fixed sleeps.
// Failure is never reported before the timeout has elapsed, and the call
// returns no later than timeout plus one poll interval.
func Expect(ctx context.Context, description string, timeout time.Duration, probe Probe) entities.AssertionResult {
	return expect(ctx, description, timeout, DefaultPollInterval, probe)
}

func expect(ctx context.Context, description string, timeout, interval time.Duration, probe Probe) entities.AssertionResult {
	if timeout <= 0 {
		timeout = DefaultAssertTimeout
	}
	start := time.Now()
	deadline := start.Add(timeout)

	var observed string
	for {
		ok, state, err := probe(ctx)
		if err == nil && ok {
			return entities.AssertionResult{
				OK:          true,
				Description: description,
				Elapsed:     time.Since(start),
			}
		}
		if err != nil {
			observed = err.Error()
		} else {
			observed = state
		}

		if !time.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return entities.AssertionResult{
				OK:          false,
				Description: description,
				Observed:    ctx.Err().Error(),
				Elapsed:     time.Since(start),
			}
		case <-time.After(interval):
		}
	}

	return entities.AssertionResult{
		OK:          false,
		Description: description,
		Observed:    observed,
		Elapsed:     time.Since(start),
	}
}
