package middleware

import (
	"context"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

type adminChecker interface {
	IsAdmin(userID int64) bool
}

// Identity moves the sender of an action into the context: user id,
// username and the operator flag. Actions without a sender are rejected.
func Identity(admins adminChecker) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, action domain.Action) error {
			if action.UserID == 0 {
				return domain.ErrUnauthorized
			}
			ctx = ctxutil.WithUserID(ctx, action.UserID)
			ctx = ctxutil.WithUsername(ctx, action.Username)
			ctx = ctxutil.WithAdmin(ctx, admins.IsAdmin(action.UserID))
			return next.Handle(ctx, action)
		})
	}
}
