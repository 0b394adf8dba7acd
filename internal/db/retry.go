package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 5 * time.Second
)

// ErrMaxAttempts indicates that every startup attempt failed.
var ErrMaxAttempts = errors.New("max attempts exceeded")

// InitWithRetry runs op until it succeeds or maxAttempts calls have failed, sleeping a
// fixed delay between attempts. The returned error wraps both ErrMaxAttempts and the
// last failure.
func InitWithRetry(ctx context.Context, op func(context.Context) error, maxAttempts int, delay time.Duration) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay < 0 {
		delay = DefaultRetryDelay
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(maxAttempts-1)),
		ctx,
	)

	attempt := 0
	var lastErr error
	operation := func() error {
		attempt++
		slog.Info("Trying to initialize database", "attempt", attempt, "max_attempts", maxAttempts)

		lastErr = op(ctx)
		if lastErr != nil {
			slog.Warn("Error initializing database",
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"error", lastErr)
		}
		return lastErr
	}
	notify := func(_ error, wait time.Duration) {
		slog.Info("Waiting before next attempt", "delay", wait)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err == nil {
		slog.Info("Database initialized successfully", "attempt", attempt)
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("database initialization interrupted: %w", ctxErr)
	}

	slog.Error("Max attempts reached, aborting", "max_attempts", maxAttempts)
	return fmt.Errorf("%w after %d attempts: %w", ErrMaxAttempts, attempt, lastErr)
}
