package ctxutil

import "context"

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	usernameKey  ctxKey = "username"
	adminKey     ctxKey = "is_admin"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the messenger user ID in the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns 0 and false if the value is missing, zero, or of the wrong type.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithUsername stores the user's public handle (without the leading @).
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromCtx returns the stored handle, or an empty string if absent.
func UsernameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// WithAdmin marks the context user as an operator.
func WithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, adminKey, isAdmin)
}

// IsAdminCtx reports whether the context user is an operator.
func IsAdminCtx(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
