package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ara/internal/catalog/models"
	"ara/internal/envelope"
	"ara/internal/registry/service"
	dErrors "ara/pkg/domain-errors"
	"ara/pkg/platform/httputil"
	"ara/pkg/platform/queryparam"
	"ara/pkg/requestcontext"
)

// Service defines the interface for registry operations.
type Service interface {
	Query(ctx context.Context, f service.Filter) ([]models.RegistryEntry, error)
	Verify(ctx context.Context, rawID string) (*service.Verification, error)
}

// Handler serves the registry query and verification endpoints.
type Handler struct {
	service  Service
	identity envelope.Identity
	mode     queryparam.Mode
	logger   *slog.Logger
}

// New creates a new registry Handler.
func New(svc Service, identity envelope.Identity, mode queryparam.Mode, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		identity: identity,
		mode:     mode,
		logger:   logger,
	}
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/registry", h.HandleQuery)
	r.Get("/verify/{id}", h.HandleVerify)
}

// HandleQuery returns the registry entries matching the query filters.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	filter, malformed, err := parseFilter(r, h.mode)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid registry query",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	if len(malformed) > 0 {
		h.logger.InfoContext(ctx, "malformed registry filters match nothing",
			"request_id", requestID,
			"params", malformed,
		)
	}

	entries, err := h.service.Query(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query registry",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, envelope.List(envelope.NewMeta(ctx, h.identity), entries))
}

// HandleVerify looks up a single certification. A miss is a 404 with a
// structured NOT_FOUND payload rather than an error envelope; an id that
// cannot exist in the registry is a miss too, regardless of filter mode.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	rawID := certificationIDParam(r)
	meta := envelope.NewMeta(ctx, h.identity)

	v, err := h.service.Verify(ctx, rawID)
	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "certification verified",
			"request_id", requestID,
			"certification_id", v.CertificationID.String(),
			"verified", v.Verified,
		)
		httputil.WriteJSON(w, http.StatusOK, VerificationResponse[*service.Verification]{Meta: meta, Verification: v})

	case dErrors.HasCode(err, dErrors.CodeNotFound), dErrors.HasCode(err, dErrors.CodeBadRequest):
		h.logger.InfoContext(ctx, "certification not found",
			"request_id", requestID,
			"certification_id", newNotFound(rawID).CertificationID,
			"reason", err.Error(),
		)
		w.Header().Set("Cache-Control", "no-store")
		httputil.WriteJSON(w, http.StatusNotFound, VerificationResponse[NotFoundVerification]{Meta: meta, Verification: newNotFound(rawID)})

	default:
		h.logger.ErrorContext(ctx, "failed to verify certification",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
	}
}
