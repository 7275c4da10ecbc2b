package middleware

import (
	"context"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects administrative actions from non-operators.
func AdminOnly(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, action domain.Action) error {
		if action.Kind.Administrative() {
			if err := RequireAdmin(ctx); err != nil {
				return err
			}
		}
		return next.Handle(ctx, action)
	})
}
