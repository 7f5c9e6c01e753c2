// Package version tags responses with the API version of the route group
// that matched them.
package version

import (
	"net/http"

	id "ara/pkg/domain"
)

// HeaderAPIVersion is echoed on every versioned response.
const HeaderAPIVersion = "X-API-Version"

// ExtractVersion creates middleware that publishes the API version of a chi
// route group. With r.Route("/api/v1", ...) the version is fixed by the
// route match.
//
// Usage:
//
//	r.Route("/api/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(id.APIVersionV1))
//	    // ... routes
//	})
func ExtractVersion(v id.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderAPIVersion, v.String())
			next.ServeHTTP(w, r)
		})
	}
}
