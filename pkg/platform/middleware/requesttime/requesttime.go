// Package requesttime captures one timestamp per request so every value
// derived during the request (envelope "generated", logs) agrees on "now".
package requesttime

import (
	"net/http"
	"time"

	"ara/pkg/requestcontext"
)

// Middleware stores the request start time, in UTC, in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
