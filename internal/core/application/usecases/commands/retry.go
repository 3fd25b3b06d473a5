package commands

import (
	"context"
	"errors"
	"time"

	"shoppingcart/internal/pkg/errs"

	log "github.com/sirupsen/logrus"
)

// RetryConfig bounds how often a lifecycle operation is re-run after its save failed.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the configuration used when none is given.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}
}

// shouldRetry reports whether err is a transient store failure. Validation,
// not-found and gateway errors are final for the attempt that produced them.
func shouldRetry(err error) bool {
	return errors.Is(err, errs.ErrPersistence) && !errors.Is(err, errs.ErrGateway)
}

// executeWithRetry runs fn until it succeeds, fails with a non-retryable
// error, ctx ends, or MaxAttempts is reached. Every attempt starts from
// scratch: fn must open its own unit of work.
func executeWithRetry(
	ctx context.Context,
	cfg RetryConfig,
	logger *log.Entry,
	onRetry func(),
	operation string,
	orderID int64,
	fn func(ctx context.Context) error,
) error {
	attempts := max(cfg.MaxAttempts, 1)
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				logger.WithFields(log.Fields{
					"operation": operation,
					"order_id":  orderID,
					"attempt":   attempt,
				}).Info("Operation succeeded after retry")
			}
			return nil
		}

		lastErr = err
		if !shouldRetry(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		logger.WithFields(log.Fields{
			"operation": operation,
			"order_id":  orderID,
			"attempt":   attempt,
			"delay":     delay,
			"error":     err,
		}).Warn("Operation failed, retrying")
		if onRetry != nil {
			onRetry()
		}

		select {
		case <-ctx.Done():
			return errors.Join(lastErr, ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	logger.WithFields(log.Fields{
		"operation":    operation,
		"order_id":     orderID,
		"max_attempts": attempts,
		"error":        lastErr,
	}).Error("Operation failed after all retry attempts")
	return lastErr
}
