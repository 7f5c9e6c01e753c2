package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"ara/internal/catalog/models"
	id "ara/pkg/domain"
	"ara/pkg/platform/sentinel"
)

type RegistryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestRegistryStoreSuite(t *testing.T) {
	suite.Run(t, new(RegistryStoreSuite))
}

func entry(certID string) models.RegistryEntry {
	return models.RegistryEntry{
		CertificationID:     id.CertificationID(certID),
		Organization:        "Org " + certID,
		CertificationStatus: models.StatusActive,
		RevocationHistory: []models.RevocationEvent{
			{Date: models.MustDate("2024-01-01"), Action: "Suspended", Reason: "audit"},
		},
	}
}

func (s *RegistryStoreSuite) SetupTest() {
	var err error
	s.store, err = NewInMemory([]models.RegistryEntry{entry("ARA-1"), entry("ARA-2")})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *RegistryStoreSuite) TestLookups() {
	s.Run("finds entry by exact id", func() {
		found, err := s.store.FindByID(s.ctx, "ARA-2")
		s.Require().NoError(err)
		s.Equal("Org ARA-2", found.Organization)
	})

	s.Run("lookup is case sensitive", func() {
		_, err := s.store.FindByID(s.ctx, "ara-2")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, "ARA-9999-UNKNOWN")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *RegistryStoreSuite) TestListPreservesOrderAndCopies() {
	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(id.CertificationID("ARA-1"), list[0].CertificationID)

	list[0].RevocationHistory[0].Reason = "mutated"
	again, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal("audit", again[0].RevocationHistory[0].Reason)
	s.Equal(2, s.store.Count())
}

func (s *RegistryStoreSuite) TestDuplicateIDsConflict() {
	_, err := NewInMemory([]models.RegistryEntry{entry("ARA-1"), entry("ARA-1")})
	s.ErrorIs(err, sentinel.ErrConflict)
}
