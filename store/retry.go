package store

import (
	"time"
)

const (
	retryAttempts    = 3
	retryBaseBackoff = 100 * time.Millisecond
)

// WithRetry runs op up to three times with exponential backoff, but
// only while it keeps failing with ErrStoreUnavailable. It exists for
// reads and for create; conditional status writes must never go
// through it, a replay there would either be a no-op or race the
// outcome it is meant to protect.
func WithRetry(op func() error) error {
	var err error
	backoff := retryBaseBackoff

	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		if err = op(); err != ErrStoreUnavailable {
			return err
		}
	}

	return err
}
