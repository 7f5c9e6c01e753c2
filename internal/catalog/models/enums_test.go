package models

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "ara/pkg/domain-errors"
)

type EnumParseSuite struct {
	suite.Suite
}

func TestEnumParseSuite(t *testing.T) {
	suite.Run(t, new(EnumParseSuite))
}

// TestCaseInsensitive verifies every closed set maps any casing onto its
// canonical spelling.
func (s *EnumParseSuite) TestCaseInsensitive() {
	s.Run("level", func() {
		for _, in := range []string{"l1", "L1", " l1 "} {
			got, err := ParseLevel(in)
			s.Require().NoError(err)
			s.Equal(LevelL1, got)
		}
	})

	s.Run("method", func() {
		got, err := ParseEvaluationMethod("cm")
		s.Require().NoError(err)
		s.Equal(MethodContinuousMonitoring, got)
	})

	s.Run("classification", func() {
		got, err := ParseClassification("BLOCKING")
		s.Require().NoError(err)
		s.Equal(ClassificationBlocking, got)
	})

	s.Run("hyphenated values", func() {
		cat, err := ParseCategory("multi-agent")
		s.Require().NoError(err)
		s.Equal(CategoryMultiAgent, cat)

		mon, err := ParseMonitoringStatus("NON-COMPLIANT")
		s.Require().NoError(err)
		s.Equal(MonitoringNonCompliant, mon)
	})

	s.Run("certification status", func() {
		got, err := ParseCertificationStatus("revoked")
		s.Require().NoError(err)
		s.Equal(StatusRevoked, got)
	})
}

// TestRejectsUnknown verifies unknown or empty input is a bad request that
// names the parameter.
func (s *EnumParseSuite) TestRejectsUnknown() {
	_, err := ParseLevel("L4")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	s.Contains(err.Error(), "level")

	_, err = ParseEvaluationMethod("")
	s.Require().Error(err)
	s.Contains(err.Error(), "method cannot be empty")

	_, err = ParseCertificationStatus("Activ")
	s.Require().Error(err)
	s.Contains(err.Error(), "Active, Suspended, Expired, Revoked, Conditional")
}

func (s *EnumParseSuite) TestIsVerified() {
	verified := map[CertificationStatus]bool{
		StatusActive:      true,
		StatusConditional: true,
		StatusSuspended:   false,
		StatusExpired:     false,
		StatusRevoked:     false,
	}
	for status, want := range verified {
		s.Equal(want, status.IsVerified(), "status %s", status)
	}
	s.False(CertificationStatus("NOT_FOUND").IsVerified())
}

func (s *EnumParseSuite) TestLevelMatrix() {
	m := LevelMatrix{L1: false, L2: true, L3: true}
	s.False(m.Applies(LevelL1))
	s.True(m.Applies(LevelL2))
	s.True(m.Applies(LevelL3))
	s.False(m.Applies(Level("L9")))
}

func (s *EnumParseSuite) TestIsValid() {
	s.True(IsValid(MethodHumanSimulation, EvaluationMethods))
	s.False(IsValid(EvaluationMethod("hs"), EvaluationMethods), "validation is exact; parsing folds case")
}
