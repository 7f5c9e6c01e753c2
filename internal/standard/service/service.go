// Package service describes the standard itself: its levels, domains,
// evaluation methods, and normative references.
package service

import (
	"context"

	"ara/internal/catalog/models"
)

// Source supplies the standard and its domain catalog.
type Source interface {
	Standard() models.Standard
	Domains() []models.Domain
}

// DomainSummary is a domain as projected into the standard description.
type DomainSummary struct {
	ID            int                `json:"id"`
	Slug          string             `json:"slug"`
	Title         string             `json:"title"`
	ACRCount      int                `json:"acrCount"`
	Applicability models.LevelMatrix `json:"applicability"`
}

// Description is the document served by GET /standard.
type Description struct {
	Title               string                      `json:"title"`
	ShortName           string                      `json:"shortName"`
	Version             string                      `json:"version"`
	Publisher           string                      `json:"publisher"`
	EffectiveDate       models.Date                 `json:"effectiveDate"`
	TotalControls       int                         `json:"totalControls"`
	Levels              []models.LevelDefinition    `json:"levels"`
	Domains             []DomainSummary             `json:"domains"`
	EvaluationMethods   []models.MethodDefinition   `json:"evaluationMethods"`
	NormativeReferences []models.NormativeReference `json:"normativeReferences"`
}

type Service struct {
	source Source
}

func New(source Source) *Service {
	return &Service{source: source}
}

// Describe joins the standard's static metadata with the domain catalog.
func (s *Service) Describe(ctx context.Context) (*Description, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	std := s.source.Standard()
	domains := s.source.Domains()

	summaries := make([]DomainSummary, len(domains))
	for i, d := range domains {
		summaries[i] = DomainSummary{
			ID:            d.ID,
			Slug:          d.Slug,
			Title:         d.Title,
			ACRCount:      d.ACRCount,
			Applicability: d.Applicability,
		}
	}

	return &Description{
		Title:               std.Title,
		ShortName:           std.ShortName,
		Version:             std.Version,
		Publisher:           std.Publisher,
		EffectiveDate:       std.EffectiveDate,
		TotalControls:       std.TotalControls,
		Levels:              std.Levels,
		Domains:             summaries,
		EvaluationMethods:   std.Methods,
		NormativeReferences: std.References,
	}, nil
}

// Domains returns the full domain catalog.
func (s *Service) Domains(ctx context.Context) ([]models.Domain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.source.Domains(), nil
}
