package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// RequestID tags the action context with a request id unless one is
// already present.
func RequestID(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, action domain.Action) error {
		if ctxutil.RequestIDFromCtx(ctx) == "" {
			ctx = ctxutil.WithRequestID(ctx, uuid.New().String())
		}
		return next.Handle(ctx, action)
	})
}
