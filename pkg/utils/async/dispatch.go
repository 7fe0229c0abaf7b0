package async

import (
	"context"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch executes a handler function asynchronously with proper context
// and panic recovery.
//
// The webhook contract is "always acknowledge quickly", so the HTTP
// handler hands transformation and delivery to Dispatch and returns. The
// handler runs on a fresh background context that keeps the request
// logger but not the request's cancellation: the response being written
// must not cancel an in-flight render or delivery.
//
// Panics are recovered and logged; errors returned by the handler are
// logged and reported to Sentry when it is configured.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
				sentry.CurrentHub().Recover(r)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("error in async handler", "error", err)
		}
	}()
}

// newBackgroundContext creates a new background context preserving the
// ctxlog logger from the original context
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	return newCtx
}
