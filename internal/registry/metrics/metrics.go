package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verification outcomes.
const (
	OutcomeVerified   = "verified"
	OutcomeUnverified = "unverified"
	OutcomeNotFound   = "not_found"
	OutcomeInvalid    = "invalid"
)

// Metrics provides observability for the registry module.
// Tracks verification outcomes and query latency.
type Metrics struct {
	Verifications *prometheus.CounterVec
	QueryDuration prometheus.Histogram
}

// New registers the module's metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ara_registry_verifications_total",
			Help: "Certification lookups by outcome",
		}, []string{"outcome"}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ara_registry_query_duration_seconds",
			Help:    "Duration of registry queries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

// IncrementVerification records one lookup. Safe on a nil receiver.
func (m *Metrics) IncrementVerification(outcome string) {
	if m == nil {
		return
	}
	m.Verifications.WithLabelValues(outcome).Inc()
}

// ObserveQuery records the duration of a registry query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(time.Since(start).Seconds())
}
