package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ara/internal/acr/metrics"
	"ara/internal/catalog/models"
)

const tracerName = "ara/internal/acr"

// ControlSource supplies the control catalog.
type ControlSource interface {
	Controls() []models.ControlRequirement
	TotalControls() int
}

// Result is a filtered view of the control catalog.
type Result struct {
	Controls        []models.ControlRequirement
	TotalInStandard int
}

// Service answers control requirement queries.
type Service struct {
	source  ControlSource
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

// New constructs a Service.
func New(source ControlSource, opts ...Option) *Service {
	s := &Service{source: source}
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

// Query returns the controls matching every constraint in f, in catalog
// order. An empty result is not an error.
func (s *Service) Query(ctx context.Context, f Filter) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "acr.Query", trace.WithAttributes(f.attributes()...))
	defer span.End()
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := s.source.Controls()
	matched := make([]models.ControlRequirement, 0, len(all))
	for _, c := range all {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}

	span.SetAttributes(attribute.Int("acr.result.count", len(matched)))
	s.metrics.ObserveQuery(start, len(matched))
	s.logger.DebugContext(ctx, "acr query",
		"filtered", !f.IsEmpty(),
		"count", len(matched),
	)

	return &Result{Controls: matched, TotalInStandard: s.source.TotalControls()}, nil
}
