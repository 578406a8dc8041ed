// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets the values; handlers and services read them without
// importing net/http.
//
// Usage in services (read values):
//
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	"coretypes/pkg/domain"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// RequestID retrieves the request ID from the context.
// Returns the empty UUID if not set.
func RequestID(ctx context.Context) domain.UUID {
	if reqID, ok := ctx.Value(requestIDKey{}).(domain.UUID); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID domain.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to the system clock if not set (CLI, tests, background work).
func Now(ctx context.Context) domain.Instant {
	if t, ok := ctx.Value(requestTimeKey{}).(domain.Instant); ok {
		return t
	}
	return domain.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, domain.Instant{Time: t})
}

// Time reports the request-scoped time and whether middleware set one.
func Time(ctx context.Context) (domain.Instant, bool) {
	t, ok := ctx.Value(requestTimeKey{}).(domain.Instant)
	return t, ok
}
