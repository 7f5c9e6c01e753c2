package store

import (
	"context"
	"fmt"

	"ara/internal/catalog/models"
	id "ara/pkg/domain"
	"ara/pkg/platform/sentinel"
)

// InMemory is a read-only registry store indexed by certification id.
// It is populated once by NewInMemory and never written afterwards.
type InMemory struct {
	entries []models.RegistryEntry
	byID    map[id.CertificationID]int
}

// NewInMemory indexes entries, preserving their order for List.
// Returns sentinel.ErrConflict when two entries share a certification id.
func NewInMemory(entries []models.RegistryEntry) (*InMemory, error) {
	s := &InMemory{
		entries: make([]models.RegistryEntry, len(entries)),
		byID:    make(map[id.CertificationID]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := s.byID[e.CertificationID]; dup {
			return nil, fmt.Errorf("certification %s: %w", e.CertificationID, sentinel.ErrConflict)
		}
		s.entries[i] = e.Clone()
		s.byID[e.CertificationID] = i
	}
	return s, nil
}

// List returns a copy of every entry in registry order.
func (s *InMemory) List(_ context.Context) ([]models.RegistryEntry, error) {
	out := make([]models.RegistryEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out, nil
}

// FindByID returns a copy of the entry with the exact certification id.
func (s *InMemory) FindByID(_ context.Context, certID id.CertificationID) (*models.RegistryEntry, error) {
	i, ok := s.byID[certID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	e := s.entries[i].Clone()
	return &e, nil
}

// Count returns the number of entries.
func (s *InMemory) Count() int {
	return len(s.entries)
}
