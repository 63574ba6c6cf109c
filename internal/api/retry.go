package api

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
)

//nolint:gochecknoglobals // Default backoff schedule.
var defaultRetryDelays = []time.Duration{250 * time.Millisecond, time.Second, 4 * time.Second}

type retryCallback[T any] func(ctx context.Context) (T, error)

// withRetry runs callback up to retries+1 times. Each attempt gets its own
// timeout; only errors accepted by isRetryable are retried.
func withRetry[T any](
	ctx context.Context,
	retries int,
	delays []time.Duration,
	timeout time.Duration,
	onRetry func(attempt uint, err error),
	callback retryCallback[T],
) (T, error) {
	if len(delays) == 0 {
		delays = defaultRetryDelays
	}
	if retries < 0 {
		retries = 0
	}
	if onRetry == nil {
		onRetry = func(uint, error) {}
	}

	var result T
	err := retry.Do(
		func() error {
			actx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			var err error
			result, err = callback(actx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(retries)+1),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			// n counts from 1 at the first retry.
			return delays[min(max(int(n)-1, 0), len(delays)-1)]
		}),
		retry.RetryIf(isRetryable),
		retry.OnRetry(onRetry),
		retry.LastErrorOnly(true),
	)
	return result, err
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}

	var decodeErr *decodeError
	return !errors.As(err, &decodeErr)
}
