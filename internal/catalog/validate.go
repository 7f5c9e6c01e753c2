package catalog

import (
	"fmt"

	"ara/internal/catalog/models"
	id "ara/pkg/domain"
)

// validate checks the cross-record invariants and returns every violation.
func validate(c *Catalog) []error {
	var problems []error
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	s := c.standard
	if s.Title == "" || s.Publisher == "" {
		addf("standard: title and publisher are required")
	}
	if len(s.Levels) != len(models.Levels) {
		addf("standard: expected %d level definitions, got %d", len(models.Levels), len(s.Levels))
	}
	for _, l := range s.Levels {
		if !models.IsValid(l.Code, models.Levels) {
			addf("standard: unknown level code %q", l.Code)
		}
		if l.MinimumControls > s.TotalControls {
			addf("standard: level %s requires %d controls but the standard defines %d", l.Code, l.MinimumControls, s.TotalControls)
		}
	}
	for _, m := range s.Methods {
		if !models.IsValid(m.Code, models.EvaluationMethods) {
			addf("standard: unknown evaluation method %q", m.Code)
		}
	}

	slugs := make(map[string]bool, len(c.domains))
	declared := 0
	if len(c.domainIndex) != len(c.domains) {
		addf("domains: duplicate domain id")
	}
	for _, d := range c.domains {
		if slugs[d.Slug] {
			addf("domain %d: duplicate slug %q", d.ID, d.Slug)
		}
		slugs[d.Slug] = true
		if d.ACRCount < 0 {
			addf("domain %d: negative acrCount", d.ID)
		}
		declared += d.ACRCount
	}
	if declared != s.TotalControls {
		addf("domains: acrCount sums to %d but the standard declares %d controls", declared, s.TotalControls)
	}

	acrIDs := make(map[string]bool, len(c.controls))
	for _, ctl := range c.controls {
		if acrIDs[ctl.ID] {
			addf("control %s: duplicate id", ctl.ID)
		}
		acrIDs[ctl.ID] = true
	}
	for _, ctl := range c.controls {
		if _, ok := c.Domain(ctl.DomainID); !ok {
			addf("control %s: domainId %d does not exist", ctl.ID, ctl.DomainID)
		}
		if !models.IsValid(ctl.EvaluationMethod, models.EvaluationMethods) {
			addf("control %s: unknown evaluation method %q", ctl.ID, ctl.EvaluationMethod)
		}
		if !models.IsValid(ctl.Classification, models.Classifications) {
			addf("control %s: unknown classification %q", ctl.ID, ctl.Classification)
		}
		if ctl.RiskWeight < 0 || ctl.RiskWeight > 1 {
			addf("control %s: riskWeight %v outside [0, 1]", ctl.ID, ctl.RiskWeight)
		}
		for _, rel := range ctl.RelatedControls {
			if !acrIDs[rel] {
				addf("control %s: related control %s does not exist", ctl.ID, rel)
			}
		}
	}

	certIDs := make(map[id.CertificationID]bool, len(c.entries))
	for _, e := range c.entries {
		if parsed, err := id.ParseCertificationID(e.CertificationID.String()); err != nil || parsed != e.CertificationID {
			addf("registry: malformed certificationId %q", e.CertificationID)
		}
		if certIDs[e.CertificationID] {
			addf("registry %s: duplicate certificationId", e.CertificationID)
		}
		certIDs[e.CertificationID] = true
		if !models.IsValid(e.Category, models.Categories) {
			addf("registry %s: unknown category %q", e.CertificationID, e.Category)
		}
		if !models.IsValid(e.CertificationLevel, models.Levels) {
			addf("registry %s: unknown level %q", e.CertificationID, e.CertificationLevel)
		}
		if !models.IsValid(e.MonitoringStatus, models.MonitoringStatuses) {
			addf("registry %s: unknown monitoring status %q", e.CertificationID, e.MonitoringStatus)
		}
		if !models.IsValid(e.CertificationStatus, models.CertificationStatuses) {
			addf("registry %s: unknown certification status %q", e.CertificationID, e.CertificationStatus)
		}
		if e.IssueDate.After(e.ExpiryDate.Time) {
			addf("registry %s: issueDate %s is after expiryDate %s", e.CertificationID, e.IssueDate, e.ExpiryDate)
		}
	}

	return problems
}
