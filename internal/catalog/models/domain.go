package models

// LevelMatrix records, per certification level, whether something applies.
type LevelMatrix struct {
	L1 bool `json:"L1" yaml:"L1"`
	L2 bool `json:"L2" yaml:"L2"`
	L3 bool `json:"L3" yaml:"L3"`
}

// Applies reports whether the matrix marks level as applicable.
// Unknown levels never apply.
func (m LevelMatrix) Applies(level Level) bool {
	switch level {
	case LevelL1:
		return m.L1
	case LevelL2:
		return m.L2
	case LevelL3:
		return m.L3
	default:
		return false
	}
}

// Domain groups related control requirements under one risk category.
//
// Invariants (checked at catalog load):
//   - ID and Slug are unique within the catalog
//   - ACRCount is the number of controls the full standard defines for the
//     domain; the dataset may carry fewer
type Domain struct {
	ID            int         `json:"id" yaml:"id"`
	Slug          string      `json:"slug" yaml:"slug"`
	Title         string      `json:"title" yaml:"title"`
	Description   string      `json:"description,omitempty" yaml:"description"`
	ACRCount      int         `json:"acrCount" yaml:"acrCount"`
	Applicability LevelMatrix `json:"applicability" yaml:"applicability"`
}
