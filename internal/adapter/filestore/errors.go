package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
)

// isTransient reports whether err is worth retrying: permission flaps
// (antivirus, editors holding the file) and interrupted or busy syscalls.
// Context errors are never transient.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.EINTR) ||
		errors.Is(err, syscall.ETXTBSY)
}

// retry runs fn with exponential backoff while it fails transiently.
// Exhausted retries are reported as domain.ErrStorageTransient.
func (s *Store) retry(ctx context.Context, op string, fn func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.opts.RetryInterval
	eb.MaxElapsedTime = 0

	attempts := s.opts.RetryAttempts
	if attempts < 0 {
		attempts = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts)), ctx)

	err := backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		metrics.StoreRetries.WithLabelValues(op).Inc()
		s.log.WarnContext(ctx, "transient file error, retrying",
			slog.String("op", op),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	})

	if err != nil && isTransient(err) {
		return fmt.Errorf("%w: %w", domain.ErrStorageTransient, err)
	}
	return err
}
