// Package catalog holds the standard's static datasets: the standard
// description, the domain catalog, the control catalog, and the registry.
//
// A Catalog is built once at startup by Load and is never written afterwards,
// so it is shared between request goroutines without locking. Accessors hand
// out copies so callers cannot mutate the loaded data.
package catalog

import (
	"slices"

	"ara/internal/catalog/models"
)

// Catalog is the immutable, validated dataset.
type Catalog struct {
	standard    models.Standard
	domains     []models.Domain
	controls    []models.ControlRequirement
	entries     []models.RegistryEntry
	domainIndex map[int]int
}

// Standard returns the standard description.
func (c *Catalog) Standard() models.Standard {
	s := c.standard
	s.Levels = slices.Clone(s.Levels)
	s.Methods = slices.Clone(s.Methods)
	s.References = slices.Clone(s.References)
	return s
}

// TotalControls is the number of controls the full standard defines.
func (c *Catalog) TotalControls() int {
	return c.standard.TotalControls
}

// Domains returns every domain in catalog order.
func (c *Catalog) Domains() []models.Domain {
	return slices.Clone(c.domains)
}

// Domain looks up a domain by id.
func (c *Catalog) Domain(id int) (models.Domain, bool) {
	i, ok := c.domainIndex[id]
	if !ok {
		return models.Domain{}, false
	}
	return c.domains[i], true
}

// Controls returns every control requirement in catalog order.
func (c *Catalog) Controls() []models.ControlRequirement {
	out := make([]models.ControlRequirement, len(c.controls))
	for i, ctl := range c.controls {
		out[i] = ctl.Clone()
	}
	return out
}

// RegistryEntries returns every registry entry in catalog order.
func (c *Catalog) RegistryEntries() []models.RegistryEntry {
	out := make([]models.RegistryEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}
