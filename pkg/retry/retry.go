// Package retry implements a bounded exponential-backoff retry policy for
// operations that fail transiently, such as submitting work to a pool whose
// workers are all busy.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy configures how an operation is retried
type Policy struct {
	InitialDelay time.Duration // delay before the second attempt
	MaxDelay     time.Duration // cap applied after each multiplication
	Multiplier   float64       // backoff growth factor, must be >= 1
	MaxAttempts  int           // 0 means retry without an attempt limit
}

// DefaultPolicy returns a policy suitable for short in-process waits
func DefaultPolicy() Policy {
	return Policy{
		InitialDelay: 100 * time.Microsecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   2.0,
		MaxAttempts:  0,
	}
}

// permanentError marks an error that must not be retried
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Do stops retrying and returns it immediately
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do runs op until it succeeds, returns a permanent error, the attempt
// budget is exhausted, or ctx is done. Between attempts it sleeps with
// exponential backoff capped at MaxDelay.
func (p Policy) Do(ctx context.Context, op func() error) error {
	delay := p.InitialDelay
	if delay <= 0 {
		delay = 100 * time.Microsecond
	}
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return fmt.Errorf("retry: gave up after %d attempts: %w", attempt, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * multiplier)
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}
