package middleware

import (
	"context"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Handler processes one user action arriving from the messaging gateway.
type Handler interface {
	Handle(ctx context.Context, action domain.Action) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, action domain.Action) error

func (f HandlerFunc) Handle(ctx context.Context, action domain.Action) error {
	return f(ctx, action)
}

// Middleware is a function that wraps a Handler.
type Middleware func(Handler) Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
