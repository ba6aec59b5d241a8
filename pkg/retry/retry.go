// Package retry implements the store-access retry policy: a bounded number
// of attempts with exponential backoff, retrying only errors the caller
// marks as transient (timeouts). Validation, NotFound, Conflict and
// InvalidStateTransition errors are never retried.
package retry

import (
	"context"
	"time"
)

// Config configures retry behavior.
type Config struct {
	// MaxAttempts includes the initial attempt. Store access uses 2:
	// one internal retry before the timeout is surfaced to the caller.
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// Multiplier grows the delay between consecutive retries.
	Multiplier float64
	// IsRetryable reports whether an error should be retried.
	IsRetryable func(error) bool
}

// DefaultConfig returns the single-retry policy used for backing-store calls.
func DefaultConfig(isRetryable func(error) bool) Config {
	return Config{
		MaxAttempts:  2,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
		IsRetryable:  isRetryable,
	}
}

// Do executes fn, retrying per cfg. The last error is returned unchanged so
// callers can classify it with errors.Is.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 2
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = 100 * time.Millisecond
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 2.0
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if cfg.IsRetryable == nil || !cfg.IsRetryable(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}
	return lastErr
}
