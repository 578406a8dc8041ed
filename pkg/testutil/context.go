package testutil

import (
	"net/http"
	"time"

	"coretypes/pkg/domain"
	"coretypes/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, as the requestid
// middleware would.
func WithRequestID(req *http.Request, id domain.UUID) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), id))
}

// WithRequestTime pins the request-scoped time, as the requesttime
// middleware would.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
