package testutil

import (
	"net/http"
	"time"

	"ara/pkg/requestcontext"
)

// FixedTime is the request time injected by WithFixedTime.
var FixedTime = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

// WithFixedTime pins the request-scoped clock so envelopes are comparable.
func WithFixedTime(req *http.Request) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), FixedTime))
}
