package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/pkg/retry"
)

// ErrStoreTimeout marks a backing-store call that did not complete within
// the configured bound. It is retried once internally; a second timeout is
// surfaced to the caller. Writes are conditional puts/transactions, so a
// timed-out attempt never leaves partial state.
var ErrStoreTimeout = errors.New("backing store timeout")

// DefaultStoreTimeout bounds a single repository call.
const DefaultStoreTimeout = 5 * time.Second

func isStoreTimeout(err error) bool {
	return errors.Is(err, ErrStoreTimeout)
}

// callStore runs fn under a per-attempt deadline, retrying a single time on
// timeout. All other errors pass through untouched for errors.Is mapping.
func callStore(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return retry.Do(ctx, retry.DefaultConfig(isStoreTimeout), func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		err := fn(attemptCtx)
		if err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(attemptCtx.Err(), context.DeadlineExceeded)) {
			return fmt.Errorf("%w: %v", ErrStoreTimeout, err)
		}
		return err
	})
}
