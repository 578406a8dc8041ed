// Package requestid assigns every request a UUID, reusing the caller's
// X-Request-ID when it is a valid v4 UUID.
package requestid

import (
	"net/http"

	"coretypes/pkg/domain"
	"coretypes/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// Middleware stores the request ID in the context and echoes it in the
// response. Generator failures fall back to domain.NewUUID.
func Middleware(gen *domain.UUIDGenerator) func(http.Handler) http.Handler {
	if gen == nil {
		gen = domain.NewUUIDGenerator(nil)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := domain.AsUUID(r.Header.Get(Header))
			if err != nil {
				if id, err = gen.New(); err != nil {
					id = domain.NewUUID()
				}
			}
			w.Header().Set(Header, string(id))
			next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
		})
	}
}
