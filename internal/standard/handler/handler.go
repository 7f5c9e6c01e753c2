package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ara/internal/catalog/models"
	"ara/internal/envelope"
	"ara/internal/standard/service"
	dErrors "ara/pkg/domain-errors"
	"ara/pkg/platform/httputil"
	"ara/pkg/requestcontext"
)

type Service interface {
	Describe(ctx context.Context) (*service.Description, error)
	Domains(ctx context.Context) ([]models.Domain, error)
}

// Handler serves the standard description and the domain list.
type Handler struct {
	service  Service
	identity envelope.Identity
	logger   *slog.Logger
}

func New(svc Service, identity envelope.Identity, logger *slog.Logger) *Handler {
	return &Handler{service: svc, identity: identity, logger: logger}
}

// Register registers the standard routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/standard", h.HandleDescribe)
	r.Get("/domains", h.HandleDomains)
}

func (h *Handler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	desc, err := h.service.Describe(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to describe standard",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to describe standard"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, envelope.Response[*service.Description]{
		Meta: envelope.NewMeta(ctx, h.identity),
		Data: desc,
	})
}

func (h *Handler) HandleDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	domains, err := h.service.Domains(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list domains",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list domains"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, envelope.List(envelope.NewMeta(ctx, h.identity), domains))
}
