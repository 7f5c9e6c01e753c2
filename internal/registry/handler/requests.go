package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"ara/internal/catalog/models"
	"ara/internal/registry/service"
	"ara/pkg/platform/queryparam"
)

// Query parameters accepted by GET /registry.
const (
	ParamLevel      = "level"
	ParamIndustry   = "industry"
	ParamStatus     = "status"
	ParamQuery      = "q"
	ParamCategory   = "category"
	ParamMonitoring = "monitoring"
)

func parseFilter(r *http.Request, mode queryparam.Mode) (service.Filter, []string, error) {
	p := queryparam.New(r.URL.Query(), mode)
	f := service.Filter{
		Level:      queryparam.Optional(p, ParamLevel, models.ParseLevel),
		Industry:   queryparam.String(p, ParamIndustry),
		Status:     queryparam.Optional(p, ParamStatus, models.ParseCertificationStatus),
		Query:      queryparam.String(p, ParamQuery),
		Category:   queryparam.Optional(p, ParamCategory, models.ParseCategory),
		Monitoring: queryparam.Optional(p, ParamMonitoring, models.ParseMonitoringStatus),
	}
	if err := p.Err(); err != nil {
		return service.Filter{}, p.Malformed(), err
	}
	f.Unsatisfiable = p.Unsatisfiable()
	return f, p.Malformed(), nil
}

// certificationIDParam returns the unescaped {id} path segment.
func certificationIDParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}
