package handler

import (
	"net/http"

	"ara/internal/acr/service"
	"ara/internal/catalog/models"
	"ara/pkg/platform/queryparam"
)

// Query parameters accepted by GET /acr.
const (
	ParamDomain         = "domain"
	ParamLevel          = "level"
	ParamMethod         = "method"
	ParamClassification = "classification"
)

// parseFilter builds a Filter from the query string. In strict mode the
// first malformed value is returned as a bad_request error.
func parseFilter(r *http.Request, mode queryparam.Mode) (service.Filter, []string, error) {
	p := queryparam.New(r.URL.Query(), mode)
	f := service.Filter{
		Domain:         queryparam.Optional(p, ParamDomain, queryparam.Int(ParamDomain)),
		Level:          queryparam.Optional(p, ParamLevel, models.ParseLevel),
		Method:         queryparam.Optional(p, ParamMethod, models.ParseEvaluationMethod),
		Classification: queryparam.Optional(p, ParamClassification, models.ParseClassification),
	}
	if err := p.Err(); err != nil {
		return service.Filter{}, p.Malformed(), err
	}
	f.Unsatisfiable = p.Unsatisfiable()
	return f, p.Malformed(), nil
}
