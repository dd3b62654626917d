// Package retry re-runs read-only operations that failed with a transient store error.
// Writes never go through here: issuance and redemption rely on idempotency keys and
// atomic store operations instead.
package retry

import (
	"context"
	"time"

	"loyalty-server/internal/store"
)

// Policy bounds the number of attempts and the delay between them
type Policy struct {
	Attempts int
	Backoff  time.Duration
}

// Default is used when a processor is built without explicit settings
var Default = Policy{Attempts: 3, Backoff: 50 * time.Millisecond}

// Do calls fn until it succeeds, returns a non-transient error, or attempts run out.
// The delay doubles after each failed attempt.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		result T
		err    error
	)
	delay := p.Backoff
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return result, err
			}
			delay *= 2
		}

		result, err = fn(ctx)
		if err == nil || !store.IsTransient(err) {
			return result, err
		}
	}
	return result, err
}
