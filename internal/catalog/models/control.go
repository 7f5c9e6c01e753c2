package models

import "slices"

// ControlRequirement (ACR) is an atomic, independently evaluable control.
//
// Invariants (checked at catalog load):
//   - ID is unique
//   - DomainID references an existing Domain
//   - RelatedControls reference existing ACR ids
//   - EvaluationMethod and Classification are canonical enum values
type ControlRequirement struct {
	ID                   string           `json:"id" yaml:"id"`
	Title                string           `json:"title" yaml:"title"`
	DomainID             int              `json:"domainId" yaml:"domainId"`
	EvaluationMethod     EvaluationMethod `json:"evaluationMethod" yaml:"evaluationMethod"`
	LevelApplicability   LevelMatrix      `json:"levelApplicability" yaml:"levelApplicability"`
	RiskWeight           float64          `json:"riskWeight" yaml:"riskWeight"`
	Classification       Classification   `json:"classification" yaml:"classification"`
	EvidenceRequirements []string         `json:"evidenceRequirements" yaml:"evidenceRequirements"`
	RelatedControls      []string         `json:"relatedControls" yaml:"relatedControls"`
}

// Clone returns a copy that shares no slices with c.
func (c ControlRequirement) Clone() ControlRequirement {
	c.EvidenceRequirements = slices.Clone(c.EvidenceRequirements)
	c.RelatedControls = slices.Clone(c.RelatedControls)
	return c
}
