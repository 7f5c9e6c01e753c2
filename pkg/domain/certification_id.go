package domain

import (
	"strings"
	"unicode"

	dErrors "ara/pkg/domain-errors"
)

// MaxCertificationIDLength bounds lookup keys accepted at the API boundary.
const MaxCertificationIDLength = 64

// CertificationID is the primary lookup key of a registry entry, for example
// "ARA-2024-0001". Lookups are exact: no case folding is applied.
//
// Usage: construct via ParseCertificationID at trust boundaries.
type CertificationID string

// ParseCertificationID trims surrounding whitespace and rejects values that
// cannot be a certification id at all. A well-formed id that is absent from
// the registry is not a parse error.
//
// Errors: returns CodeBadRequest when the value is empty, too long, or
// contains whitespace or control characters.
func ParseCertificationID(s string) (CertificationID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "certification id cannot be empty")
	}
	if len(s) > MaxCertificationIDLength {
		return "", dErrors.New(dErrors.CodeBadRequest, "certification id is too long")
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", dErrors.New(dErrors.CodeBadRequest, "certification id contains invalid characters")
		}
	}
	return CertificationID(s), nil
}

// String returns the certification id.
func (c CertificationID) String() string {
	return string(c)
}
