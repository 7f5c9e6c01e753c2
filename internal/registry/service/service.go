package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ara/internal/catalog/models"
	"ara/internal/registry/metrics"
	id "ara/pkg/domain"
	dErrors "ara/pkg/domain-errors"
	"ara/pkg/platform/sentinel"
)

const tracerName = "ara/internal/registry"

// DefaultSiteURL is the base of synthesized registry page links.
const DefaultSiteURL = "https://ara-standard.org"

type Store interface {
	List(ctx context.Context) ([]models.RegistryEntry, error)
	FindByID(ctx context.Context, certID id.CertificationID) (*models.RegistryEntry, error)
}

// Service answers registry queries and certification lookups.
type Service struct {
	store   Store
	siteURL string
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithSiteURL sets the base used for Verification.RegistryURL.
func WithSiteURL(siteURL string) Option {
	return func(s *Service) {
		if siteURL != "" {
			s.siteURL = siteURL
		}
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, siteURL: DefaultSiteURL}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Query returns the registry entries matching every constraint in f, in
// registry order. An empty result is not an error.
func (s *Service) Query(ctx context.Context, f Filter) ([]models.RegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Query", trace.WithAttributes(f.attributes()...))
	defer span.End()
	start := time.Now()
	defer s.metrics.ObserveQuery(start)

	all, err := s.store.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list registry entries")
	}

	matched := make([]models.RegistryEntry, 0, len(all))
	for _, e := range all {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	span.SetAttributes(attribute.Int("registry.result.count", len(matched)))
	return matched, nil
}

// Verify looks up a certification by exact id after trimming surrounding
// whitespace. A malformed id yields CodeBadRequest; an unknown id yields
// CodeNotFound. Callers report both as a miss.
func (s *Service) Verify(ctx context.Context, rawID string) (*Verification, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Verify")
	defer span.End()

	certID, err := id.ParseCertificationID(rawID)
	if err != nil {
		s.metrics.IncrementVerification(metrics.OutcomeInvalid)
		return nil, err
	}
	span.SetAttributes(attribute.String("registry.certification_id", certID.String()))

	entry, err := s.store.FindByID(ctx, certID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementVerification(metrics.OutcomeNotFound)
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "certification not found")
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up certification")
	}

	v := NewVerification(*entry, s.siteURL)
	if v.Verified {
		s.metrics.IncrementVerification(metrics.OutcomeVerified)
	} else {
		s.metrics.IncrementVerification(metrics.OutcomeUnverified)
	}
	span.SetAttributes(attribute.Bool("registry.verified", v.Verified))
	s.logger.DebugContext(ctx, "certification verified",
		"certification_id", certID.String(),
		"status", string(v.CertificationStatus),
		"verified", v.Verified,
	)
	return &v, nil
}
