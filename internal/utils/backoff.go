package utils

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

func DefaultBackoff() backoff.BackOff {
	boff := backoff.NewExponentialBackOff()
	boff.MaxElapsedTime = 5 * time.Second

	return boff
}

// Retry runs op under DefaultBackoff, calling notify before every retry. It
// stops early once ctx is done.
func Retry(ctx context.Context, op func() error, notify func(err error, wait time.Duration)) error {
	return backoff.RetryNotify(op, backoff.WithContext(DefaultBackoff(), ctx), notify)
}
