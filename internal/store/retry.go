package store

import (
	"context"
	"time"
)

const (
	retryAttempts = 3
	retryBaseWait = 200 * time.Millisecond
)

// WithRetry runs fn, retrying transient failures with doubling backoff up
// to a small bounded count. Non-transient errors are returned immediately.
func WithRetry(ctx context.Context, fn func() error) error {
	wait := retryBaseWait
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
		if err = fn(); err == nil || !IsTransient(err) {
			return err
		}
	}
	return err
}
