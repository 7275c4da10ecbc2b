package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and turns the panic into an error.
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, action domain.Action) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					logger.ErrorContext(ctx, "panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(stack)),
						slog.String("action", action.Kind.String()),
					)
					err = fmt.Errorf("panic: %v", r)
				}
			}()
			return next.Handle(ctx, action)
		})
	}
}
