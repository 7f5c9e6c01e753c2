package service

import (
	"go.opentelemetry.io/otel/attribute"

	"ara/internal/catalog/models"
)

// Filter selects control requirements. Nil fields are not constrained; set
// fields are ANDed.
type Filter struct {
	Domain         *int
	Level          *models.Level
	Method         *models.EvaluationMethod
	Classification *models.Classification

	// Unsatisfiable marks a filter built from a malformed value that was
	// accepted leniently. It matches nothing.
	Unsatisfiable bool
}

type predicate func(models.ControlRequirement) bool

func (f Filter) predicates() []predicate {
	if f.Unsatisfiable {
		return []predicate{func(models.ControlRequirement) bool { return false }}
	}
	var ps []predicate
	if f.Domain != nil {
		domain := *f.Domain
		ps = append(ps, func(c models.ControlRequirement) bool { return c.DomainID == domain })
	}
	if f.Level != nil {
		level := *f.Level
		ps = append(ps, func(c models.ControlRequirement) bool { return c.LevelApplicability.Applies(level) })
	}
	if f.Method != nil {
		method := *f.Method
		ps = append(ps, func(c models.ControlRequirement) bool { return c.EvaluationMethod == method })
	}
	if f.Classification != nil {
		class := *f.Classification
		ps = append(ps, func(c models.ControlRequirement) bool { return c.Classification == class })
	}
	return ps
}

// Matches reports whether c satisfies every predicate of f.
func (f Filter) Matches(c models.ControlRequirement) bool {
	for _, p := range f.predicates() {
		if !p(c) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return len(f.predicates()) == 0
}

func (f Filter) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.Bool("acr.filter.unsatisfiable", f.Unsatisfiable)}
	if f.Domain != nil {
		attrs = append(attrs, attribute.Int("acr.filter.domain", *f.Domain))
	}
	if f.Level != nil {
		attrs = append(attrs, attribute.String("acr.filter.level", string(*f.Level)))
	}
	if f.Method != nil {
		attrs = append(attrs, attribute.String("acr.filter.method", string(*f.Method)))
	}
	if f.Classification != nil {
		attrs = append(attrs, attribute.String("acr.filter.classification", string(*f.Classification)))
	}
	return attrs
}
