package service

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"ara/internal/acr/metrics"
	"ara/internal/catalog"
	"ara/internal/catalog/models"
)

type QuerySuite struct {
	suite.Suite
	catalog *catalog.Catalog
	service *Service
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

func (s *QuerySuite) SetupSuite() {
	c, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *QuerySuite) SetupTest() {
	s.service = New(s.catalog)
}

func ptr[T any](v T) *T { return &v }

func ids(controls []models.ControlRequirement) []string {
	out := make([]string, len(controls))
	for i, c := range controls {
		out[i] = c.ID
	}
	return out
}

func (s *QuerySuite) query(f Filter) *Result {
	res, err := s.service.Query(context.Background(), f)
	s.Require().NoError(err)
	return res
}

func (s *QuerySuite) TestUnfilteredReturnsCatalog() {
	res := s.query(Filter{})
	s.Len(res.Controls, len(s.catalog.Controls()))
	s.Equal(174, res.TotalInStandard)
}

func (s *QuerySuite) TestFilters() {
	s.Run("domain and level", func() {
		res := s.query(Filter{Domain: ptr(3), Level: ptr(models.LevelL1)})
		s.Equal([]string{"ACR-3.01", "ACR-3.02"}, ids(res.Controls))
	})

	s.Run("domain and method", func() {
		res := s.query(Filter{Domain: ptr(2), Method: ptr(models.MethodAutomatedTesting)})
		s.Equal([]string{"ACR-2.01", "ACR-2.02"}, ids(res.Controls))
	})

	s.Run("level filter follows the applicability matrix", func() {
		res := s.query(Filter{Level: ptr(models.LevelL1)})
		s.Len(res.Controls, 12)
		for _, c := range res.Controls {
			s.True(c.LevelApplicability.L1, c.ID)
		}
	})

	s.Run("classification", func() {
		res := s.query(Filter{Classification: ptr(models.ClassificationBlocking)})
		s.Len(res.Controls, 14)
	})

	s.Run("no matches yields an empty list", func() {
		res := s.query(Filter{Domain: ptr(8), Level: ptr(models.LevelL1)})
		s.NotNil(res.Controls)
		s.Empty(res.Controls)
	})

	s.Run("unknown domain yields an empty list", func() {
		s.Empty(s.query(Filter{Domain: ptr(42)}).Controls)
	})

	s.Run("unsatisfiable filter matches nothing", func() {
		res := s.query(Filter{Unsatisfiable: true})
		s.Empty(res.Controls)
		s.Equal(174, res.TotalInStandard)
	})
}

func (s *QuerySuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.service.Query(ctx, Filter{})
	s.ErrorIs(err, context.Canceled)
}

func (s *QuerySuite) TestRecordsSpanAndMetrics() {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := New(s.catalog, WithTracerProvider(tp), WithMetrics(m))

	_, err := svc.Query(context.Background(), Filter{Domain: ptr(1)})
	s.Require().NoError(err)

	spans := recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal("acr.Query", spans[0].Name())
	s.Equal(1, promtest.CollectAndCount(m.QueryResults))
}

// Filtering by several fields returns exactly the intersection of filtering
// by each field alone.
func TestFilterConjunctionProperty(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	svc := New(c)
	ctx := context.Background()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	build := func(domain, level, method, class int) []Filter {
		var parts []Filter
		if domain >= 0 {
			parts = append(parts, Filter{Domain: ptr(domain)})
		}
		if level >= 0 {
			parts = append(parts, Filter{Level: ptr(models.Levels[level])})
		}
		if method >= 0 {
			parts = append(parts, Filter{Method: ptr(models.EvaluationMethods[method])})
		}
		if class >= 0 {
			parts = append(parts, Filter{Classification: ptr(models.Classifications[class])})
		}
		return parts
	}

	properties.Property("combined filter equals intersection of single filters", prop.ForAll(
		func(domain, level, method, class int) bool {
			parts := build(domain, level, method, class)
			combined := Filter{}
			for _, p := range parts {
				if p.Domain != nil {
					combined.Domain = p.Domain
				}
				if p.Level != nil {
					combined.Level = p.Level
				}
				if p.Method != nil {
					combined.Method = p.Method
				}
				if p.Classification != nil {
					combined.Classification = p.Classification
				}
			}

			got, err := svc.Query(ctx, combined)
			if err != nil {
				return false
			}

			want := map[string]int{}
			for _, ctl := range c.Controls() {
				want[ctl.ID] = 0
			}
			for _, p := range parts {
				res, err := svc.Query(ctx, p)
				if err != nil {
					return false
				}
				for _, ctl := range res.Controls {
					want[ctl.ID]++
				}
			}
			expected := 0
			for _, hits := range want {
				if hits == len(parts) {
					expected++
				}
			}
			if len(got.Controls) != expected {
				return false
			}
			for _, ctl := range got.Controls {
				if want[ctl.ID] != len(parts) {
					return false
				}
			}
			return true
		},
		gen.IntRange(-1, 9),
		gen.IntRange(-1, len(models.Levels)-1),
		gen.IntRange(-1, len(models.EvaluationMethods)-1),
		gen.IntRange(-1, len(models.Classifications)-1),
	))

	properties.TestingRun(t)
}
