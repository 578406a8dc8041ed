package requestid

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"coretypes/pkg/domain"
	"coretypes/pkg/requestcontext"
)

func capture(seen *domain.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = requestcontext.RequestID(r.Context())
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("keeps a valid caller id", func(t *testing.T) {
		var seen domain.UUID
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(Header, "91a495f8-86a3-453a-aa10-1d50a45c95f9")
		rec := httptest.NewRecorder()

		Middleware(nil)(capture(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, domain.UUID("91a495f8-86a3-453a-aa10-1d50a45c95f9"), seen)
		assert.Equal(t, string(seen), rec.Header().Get(Header))
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		var seen domain.UUID
		gen := domain.NewUUIDGenerator(bytes.NewReader(make([]byte, 16)))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(Header, "'; DROP TABLE requests;--")
		rec := httptest.NewRecorder()

		Middleware(gen)(capture(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, domain.UUID("00000000-0000-4000-8000-000000000000"), seen)
		assert.Equal(t, string(seen), rec.Header().Get(Header))
	})

	t.Run("falls back when the generator source is exhausted", func(t *testing.T) {
		var seen domain.UUID
		gen := domain.NewUUIDGenerator(bytes.NewReader(nil))
		rec := httptest.NewRecorder()

		Middleware(gen)(capture(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, domain.IsUUID(seen))
	})
}
