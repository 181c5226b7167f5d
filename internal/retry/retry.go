package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Do runs op up to attempts times, pausing delay between attempts (never
// before the first). Any failure is eligible for a retry; when the budget is
// exhausted the last observed failure is returned. A cancelled context stops
// retrying early.
func Do[T any](ctx context.Context, attempts int, delay time.Duration, op func() (T, error)) (T, error) {
	if attempts < 1 {
		attempts = 1
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1)),
		ctx,
	)
	return backoff.RetryWithData(op, b)
}
