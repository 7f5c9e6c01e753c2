package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"ara/internal/badge"
	"ara/pkg/requestcontext"
)

// ContentType is the media type of rendered badges.
const ContentType = "image/svg+xml; charset=utf-8"

// Handler serves rendered certification badges.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register registers the badge route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/badge", h.HandleBadge)
}

// HandleBadge renders a badge from query parameters. Unparseable values fall
// back to the renderer defaults instead of failing the request.
func (h *Handler) HandleBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	opts := badge.Options{
		Level:           atoi(q.Get("level")),
		CertificationID: q.Get("id"),
		Size:            atoi(q.Get("size")),
		Variant:         badge.ParseVariant(q.Get("variant")),
	}.Normalize()

	h.logger.DebugContext(ctx, "rendering badge",
		"request_id", requestcontext.RequestID(ctx),
		"level", opts.Level,
		"variant", string(opts.Variant),
		"size", opts.Size,
	)

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(badge.Render(opts)))
}

// atoi returns 0, which Normalize maps to the default, for anything that is
// not an integer.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
