package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ara/internal/acr/service"
	"ara/internal/envelope"
	dErrors "ara/pkg/domain-errors"
	"ara/pkg/platform/httputil"
	"ara/pkg/platform/queryparam"
	"ara/pkg/requestcontext"
)

// Service defines the interface for control requirement queries.
type Service interface {
	Query(ctx context.Context, f service.Filter) (*service.Result, error)
}

// Handler serves the control requirement query endpoint.
type Handler struct {
	service  Service
	identity envelope.Identity
	mode     queryparam.Mode
	logger   *slog.Logger
}

// New creates a new ACR Handler.
func New(svc Service, identity envelope.Identity, mode queryparam.Mode, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		identity: identity,
		mode:     mode,
		logger:   logger,
	}
}

// Register registers the ACR routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/acr", h.HandleQuery)
}

// HandleQuery returns the control requirements matching the query filters.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	filter, malformed, err := parseFilter(r, h.mode)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid acr query",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	if len(malformed) > 0 {
		h.logger.InfoContext(ctx, "malformed acr filters match nothing",
			"request_id", requestID,
			"params", malformed,
		)
	}

	res, err := h.service.Query(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query control requirements",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query control requirements"))
		return
	}

	meta := envelope.NewMeta(ctx, h.identity).WithTotal(res.TotalInStandard)
	httputil.WriteJSON(w, http.StatusOK, envelope.List(meta, res.Controls))
}
