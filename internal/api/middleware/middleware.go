// Package middleware adapts the shared HTTP middleware to the JSON API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/imposter/internal/api/apierr"
	"github.com/mcoot/imposter/internal/middleware"
)

// DefaultMaxBodyBytes caps API request bodies
const DefaultMaxBodyBytes = 4 << 10

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// Recovery creates panic recovery middleware that answers with the JSON
// INTERNAL_ERROR body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// MaxBody limits how much of a request body handlers may read. Reads past
// the limit fail with *http.MaxBytesError.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// NoStore keeps responses out of shared caches. Session bodies can carry a
// revealed card.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
