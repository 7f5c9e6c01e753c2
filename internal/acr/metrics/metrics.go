package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for control requirement queries.
type Metrics struct {
	QueryDuration prometheus.Histogram
	QueryResults  prometheus.Histogram
}

// New registers the module's metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ara_acr_query_duration_seconds",
			Help:    "Duration of control requirement queries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		QueryResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ara_acr_query_results",
			Help:    "Number of control requirements returned per query",
			Buckets: prometheus.LinearBuckets(0, 25, 8),
		}),
	}
}

// ObserveQuery records one query. Call with time.Now() at the start of the
// query. Safe on a nil receiver.
func (m *Metrics) ObserveQuery(start time.Time, results int) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(time.Since(start).Seconds())
	m.QueryResults.Observe(float64(results))
}
