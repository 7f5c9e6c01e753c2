package models

import (
	"fmt"
	"strings"

	dErrors "ara/pkg/domain-errors"
	pstrings "ara/pkg/platform/strings"
)

// Level is a certification tier. Higher levels demand more controls.
type Level string

const (
	LevelL1 Level = "L1"
	LevelL2 Level = "L2"
	LevelL3 Level = "L3"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelL1, LevelL2, LevelL3}

// EvaluationMethod is the technique used to assess a control requirement.
type EvaluationMethod string

const (
	MethodAutomatedTesting     EvaluationMethod = "AT"
	MethodHumanSimulation      EvaluationMethod = "HS"
	MethodEvidenceInspection   EvaluationMethod = "EI"
	MethodContinuousMonitoring EvaluationMethod = "CM"
)

// EvaluationMethods lists every evaluation method.
var EvaluationMethods = []EvaluationMethod{
	MethodAutomatedTesting,
	MethodHumanSimulation,
	MethodEvidenceInspection,
	MethodContinuousMonitoring,
}

// Classification states whether failing a control blocks certification.
type Classification string

const (
	ClassificationBlocking    Classification = "Blocking"
	ClassificationConditional Classification = "Conditional"
)

// Classifications lists every classification.
var Classifications = []Classification{ClassificationBlocking, ClassificationConditional}

// Category is the kind of autonomous system a certification covers.
type Category string

const (
	CategoryAgent      Category = "Agent"
	CategoryMultiAgent Category = "Multi-Agent"
	CategoryPhysical   Category = "Physical"
	CategoryHybrid     Category = "Hybrid"
)

// Categories lists every system category.
var Categories = []Category{CategoryAgent, CategoryMultiAgent, CategoryPhysical, CategoryHybrid}

// MonitoringStatus is the outcome of continuous post-certification monitoring.
type MonitoringStatus string

const (
	MonitoringCompliant    MonitoringStatus = "Compliant"
	MonitoringWarning      MonitoringStatus = "Warning"
	MonitoringNonCompliant MonitoringStatus = "Non-Compliant"
	MonitoringPending      MonitoringStatus = "Pending"
)

// MonitoringStatuses lists every monitoring status.
var MonitoringStatuses = []MonitoringStatus{
	MonitoringCompliant,
	MonitoringWarning,
	MonitoringNonCompliant,
	MonitoringPending,
}

// CertificationStatus is the lifecycle state of a certification.
type CertificationStatus string

const (
	StatusActive      CertificationStatus = "Active"
	StatusSuspended   CertificationStatus = "Suspended"
	StatusExpired     CertificationStatus = "Expired"
	StatusRevoked     CertificationStatus = "Revoked"
	StatusConditional CertificationStatus = "Conditional"
)

// CertificationStatuses lists every certification status.
var CertificationStatuses = []CertificationStatus{
	StatusActive,
	StatusSuspended,
	StatusExpired,
	StatusRevoked,
	StatusConditional,
}

// IsVerified reports whether a certification in this status counts as
// verified. Suspended, expired and revoked certifications are found in the
// registry but are not verified.
func (s CertificationStatus) IsVerified() bool {
	return s == StatusActive || s == StatusConditional
}

// ParseLevel parses a level case-insensitively ("l2" → L2).
func ParseLevel(s string) (Level, error) { return parseEnum("level", s, Levels) }

// ParseEvaluationMethod parses an evaluation method case-insensitively.
func ParseEvaluationMethod(s string) (EvaluationMethod, error) {
	return parseEnum("method", s, EvaluationMethods)
}

// ParseClassification parses a classification case-insensitively.
func ParseClassification(s string) (Classification, error) {
	return parseEnum("classification", s, Classifications)
}

// ParseCategory parses a system category case-insensitively.
func ParseCategory(s string) (Category, error) { return parseEnum("category", s, Categories) }

// ParseMonitoringStatus parses a monitoring status case-insensitively.
func ParseMonitoringStatus(s string) (MonitoringStatus, error) {
	return parseEnum("monitoring", s, MonitoringStatuses)
}

// ParseCertificationStatus parses a certification status case-insensitively.
func ParseCertificationStatus(s string) (CertificationStatus, error) {
	return parseEnum("status", s, CertificationStatuses)
}

// IsValid reports whether v is one of the canonical values.
func IsValid[T ~string](v T, values []T) bool {
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

// parseEnum maps external input onto the canonical spelling of a closed set.
// Errors carry CodeBadRequest and name the parameter.
func parseEnum[T ~string](param, s string, values []T) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, param+" cannot be empty")
	}
	for _, v := range values {
		if pstrings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid %s %q: expected one of %s", param, s, join(values)))
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
