package service

import (
	"go.opentelemetry.io/otel/attribute"

	"ara/internal/catalog/models"
	pstrings "ara/pkg/platform/strings"
)

// Filter selects registry entries. Nil fields are not constrained; set
// fields are ANDed. Enum fields match exactly; Industry and Query match
// case-insensitive substrings.
type Filter struct {
	Level      *models.Level
	Industry   *string
	Status     *models.CertificationStatus
	Query      *string
	Category   *models.Category
	Monitoring *models.MonitoringStatus

	// Unsatisfiable marks a filter built from a malformed value that was
	// accepted leniently. It matches nothing.
	Unsatisfiable bool
}

type predicate func(models.RegistryEntry) bool

func (f Filter) predicates() []predicate {
	if f.Unsatisfiable {
		return []predicate{func(models.RegistryEntry) bool { return false }}
	}
	var ps []predicate
	if f.Level != nil {
		level := *f.Level
		ps = append(ps, func(e models.RegistryEntry) bool { return e.CertificationLevel == level })
	}
	if f.Industry != nil {
		industry := *f.Industry
		ps = append(ps, func(e models.RegistryEntry) bool { return pstrings.ContainsFold(e.Industry, industry) })
	}
	if f.Status != nil {
		status := *f.Status
		ps = append(ps, func(e models.RegistryEntry) bool { return e.CertificationStatus == status })
	}
	if f.Query != nil {
		q := *f.Query
		ps = append(ps, func(e models.RegistryEntry) bool {
			return pstrings.AnyContainsFold(q, e.Organization, e.SystemName, e.CertificationID.String())
		})
	}
	if f.Category != nil {
		category := *f.Category
		ps = append(ps, func(e models.RegistryEntry) bool { return e.Category == category })
	}
	if f.Monitoring != nil {
		monitoring := *f.Monitoring
		ps = append(ps, func(e models.RegistryEntry) bool { return e.MonitoringStatus == monitoring })
	}
	return ps
}

// Matches reports whether e satisfies every predicate of f.
func (f Filter) Matches(e models.RegistryEntry) bool {
	for _, p := range f.predicates() {
		if !p(e) {
			return false
		}
	}
	return true
}

func (f Filter) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.Bool("registry.filter.unsatisfiable", f.Unsatisfiable)}
	if f.Level != nil {
		attrs = append(attrs, attribute.String("registry.filter.level", string(*f.Level)))
	}
	if f.Status != nil {
		attrs = append(attrs, attribute.String("registry.filter.status", string(*f.Status)))
	}
	if f.Category != nil {
		attrs = append(attrs, attribute.String("registry.filter.category", string(*f.Category)))
	}
	if f.Monitoring != nil {
		attrs = append(attrs, attribute.String("registry.filter.monitoring", string(*f.Monitoring)))
	}
	if f.Industry != nil {
		attrs = append(attrs, attribute.Bool("registry.filter.industry", true))
	}
	if f.Query != nil {
		attrs = append(attrs, attribute.Bool("registry.filter.q", true))
	}
	return attrs
}
