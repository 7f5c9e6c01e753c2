// Package httpapi assembles the public HTTP surface: it builds the services
// over a loaded catalog and mounts their handlers behind the shared
// middleware chain.
package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	acrHandler "ara/internal/acr/handler"
	acrMetrics "ara/internal/acr/metrics"
	acrService "ara/internal/acr/service"
	badgeHandler "ara/internal/badge/handler"
	"ara/internal/catalog"
	"ara/internal/envelope"
	"ara/internal/platform/metrics"
	"ara/internal/platform/middleware"
	"ara/internal/platform/telemetry"
	registryHandler "ara/internal/registry/handler"
	registryMetrics "ara/internal/registry/metrics"
	registryService "ara/internal/registry/service"
	registryStore "ara/internal/registry/store"
	standardHandler "ara/internal/standard/handler"
	standardService "ara/internal/standard/service"
	id "ara/pkg/domain"
	"ara/pkg/platform/httputil"
	"ara/pkg/platform/middleware/headers"
	"ara/pkg/platform/middleware/metadata"
	"ara/pkg/platform/middleware/requestid"
	"ara/pkg/platform/middleware/requesttime"
	"ara/pkg/platform/middleware/version"
	"ara/pkg/platform/queryparam"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

// Config controls the HTTP surface.
type Config struct {
	StrictFilters  bool
	CacheMaxAge    time.Duration
	SiteURL        string
	CORSOrigins    []string
	ServiceName    string
	ServeMetrics   bool
	RequestTimeout time.Duration
}

// API is the assembled HTTP surface.
type API struct {
	Handler http.Handler
	Metrics *metrics.Metrics
}

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// New wires stores, services and handlers over cat and registers every
// metric on reg.
func New(cat *catalog.Catalog, cfg Config, logger *slog.Logger, reg *prometheus.Registry) (*API, error) {
	m := metrics.New(reg)
	m.SetCatalogRecords("domains", len(cat.Domains()))
	m.SetCatalogRecords("controls", len(cat.Controls()))
	m.SetCatalogRecords("registry", len(cat.RegistryEntries()))

	store, err := registryStore.NewInMemory(cat.RegistryEntries())
	if err != nil {
		return nil, fmt.Errorf("index registry: %w", err)
	}

	identity := envelope.IdentityOf(cat.Standard())
	mode := queryparam.ModeFor(cfg.StrictFilters)

	acr := acrService.New(cat,
		acrService.WithLogger(logger),
		acrService.WithMetrics(acrMetrics.New(reg)),
	)
	registry := registryService.New(store,
		registryService.WithLogger(logger),
		registryService.WithMetrics(registryMetrics.New(reg)),
		registryService.WithSiteURL(cfg.SiteURL),
	)

	handlers := []Registrar{
		acrHandler.New(acr, identity, mode, logger),
		registryHandler.New(registry, identity, mode, logger),
		standardHandler.New(standardService.New(cat), identity, logger),
		badgeHandler.New(logger),
	}

	logger.Info("http api assembled",
		"filter_mode", mode.String(),
		"controls", len(cat.Controls()),
		"registry_entries", store.Count(),
	)
	return &API{Handler: NewRouter(cfg, logger, m, handlers...), Metrics: m}, nil
}

// NewRouter mounts handlers under APIPrefix behind the middleware chain.
func NewRouter(cfg Config, logger *slog.Logger, m *metrics.Metrics, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(telemetry.HTTPMiddleware(cfg.ServiceName))
	r.Use(m.Middleware)
	r.Use(headers.Security)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowed)

	r.Get("/healthz", handleHealth)
	if cfg.ServeMetrics {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route(APIPrefix, func(api chi.Router) {
		api.Use(version.ExtractVersion(id.APIVersionV1))
		api.Use(headers.CORS(cfg.CORSOrigins))
		api.Use(headers.CacheControl(int(cfg.CacheMaxAge / time.Second)))
		api.NotFound(middleware.NotFound)
		api.MethodNotAllowed(middleware.MethodNotAllowed)
		for _, h := range handlers {
			h.Register(api)
		}
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
