package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const readRetryBase = 50 * time.Millisecond

// IsTransient reports whether err is a storage failure that did not reach
// the server or timed out, so repeating a read is harmless.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

// RetryRead repeats a pure read on transient failures. Never use it for
// anything that mutates state.
func RetryRead[T any](ctx context.Context, retries uint64, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(readRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			if IsTransient(err) {
				zap.L().Warn("transient read failure, retrying", zap.Error(err))
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		return nil
	})
	return out, err
}
