package handler

import (
	"strings"

	"ara/internal/envelope"
	id "ara/pkg/domain"
)

// StatusNotFound is the status reported for a certification id that is not
// in the registry.
const StatusNotFound = "NOT_FOUND"

const notFoundMessage = "No certification with this identifier exists in the ARA registry."

// VerificationResponse is the {meta, verification} envelope of GET /verify/{id}.
type VerificationResponse[T any] struct {
	Meta         envelope.Meta `json:"meta"`
	Verification T             `json:"verification"`
}

// NotFoundVerification is the verification payload of a registry miss.
type NotFoundVerification struct {
	CertificationID string `json:"certificationId"`
	Status          string `json:"status"`
	Verified        bool   `json:"verified"`
	Message         string `json:"message"`
}

func newNotFound(rawID string) NotFoundVerification {
	certID := strings.TrimSpace(rawID)
	if r := []rune(certID); len(r) > id.MaxCertificationIDLength {
		certID = string(r[:id.MaxCertificationIDLength])
	}
	return NotFoundVerification{
		CertificationID: certID,
		Status:          StatusNotFound,
		Verified:        false,
		Message:         notFoundMessage,
	}
}
