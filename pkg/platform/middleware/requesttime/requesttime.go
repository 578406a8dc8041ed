// Package requesttime provides middleware for request-scoped time.
// All operations within a single HTTP request use the same "now" instant.
package requesttime

import (
	"net/http"
	"time"

	"coretypes/pkg/domain"
	"coretypes/pkg/requestcontext"
)

// Middleware captures clock() at the start of the request and stores it in
// the context. A nil clock reads the system clock.
func Middleware(clock domain.Clock) func(http.Handler) http.Handler {
	if clock == nil {
		clock = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), clock())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
