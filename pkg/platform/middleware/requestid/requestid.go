// Package requestid assigns every request an identifier that is echoed in the
// X-Request-ID response header and carried in the context for logging.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"ara/pkg/requestcontext"
)

// Header is the request and response header carrying the id.
const Header = "X-Request-ID"

const maxInboundLength = 128

// Middleware reuses a sane inbound X-Request-ID (from a trusted proxy) or
// generates a new UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > maxInboundLength {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
