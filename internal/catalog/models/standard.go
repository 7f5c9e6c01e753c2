package models

// LevelDefinition describes one certification level.
type LevelDefinition struct {
	Code            Level  `json:"code" yaml:"code"`
	Name            string `json:"name" yaml:"name"`
	Description     string `json:"description" yaml:"description"`
	MinimumControls int    `json:"minimumControls" yaml:"minimumControls"`
}

// MethodDefinition is a glossary entry for an evaluation method.
type MethodDefinition struct {
	Code        EvaluationMethod `json:"code" yaml:"code"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
}

// NormativeReference is an external document the standard depends on.
type NormativeReference struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Standard holds the compile-time description of the standard itself.
type Standard struct {
	Title         string               `json:"title" yaml:"title"`
	ShortName     string               `json:"shortName" yaml:"shortName"`
	Version       string               `json:"version" yaml:"version"`
	Publisher     string               `json:"publisher" yaml:"publisher"`
	EffectiveDate Date                 `json:"effectiveDate" yaml:"effectiveDate"`
	TotalControls int                  `json:"totalControls" yaml:"totalControls"`
	Levels        []LevelDefinition    `json:"levels" yaml:"levels"`
	Methods       []MethodDefinition   `json:"evaluationMethods" yaml:"evaluationMethods"`
	References    []NormativeReference `json:"normativeReferences" yaml:"normativeReferences"`
}
