package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// Logger returns middleware that logs each action with its kind, duration,
// outcome and context identifiers (request_id, user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, action domain.Action) error {
			start := time.Now()

			err := next.Handle(ctx, action)

			attrs := []slog.Attr{
				slog.String("action", action.Kind.String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.Int64("user_id", userID))
			}

			level := slog.LevelInfo
			switch {
			case err == nil:
			case expected(err):
				attrs = append(attrs, slog.String("error", err.Error()))
			default:
				attrs = append(attrs, slog.String("error", err.Error()))
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "bot.action", attrs...)

			return err
		})
	}
}

// expected reports errors caused by the user rather than by the system.
func expected(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrForbidden,
		domain.ErrUnauthorized,
		domain.ErrDuplicateAttempt,
		domain.ErrRateLimited,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
