package cache

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a transient failure, such as a 5xx from the puzzle
// server, that [Retry] should try again.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err's chain contains a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Retry calls fn until it succeeds, returns an error not marked
// [Retryable], or has been called attempts times. The wait between calls
// starts at delay and doubles.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	err := fn()
	for n := 1; n < attempts && IsRetryable(err); n++ {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
		err = fn()
	}
	return err
}
