package service

import (
	"net/url"
	"strings"

	"ara/internal/catalog/models"
	id "ara/pkg/domain"
)

// Verification is the public view of a registry entry returned by Verify.
type Verification struct {
	CertificationID     id.CertificationID         `json:"certificationId"`
	Organization        string                     `json:"organization"`
	SystemName          string                     `json:"systemName"`
	Category            models.Category            `json:"category"`
	CertificationLevel  models.Level               `json:"certificationLevel"`
	CertificationStatus models.CertificationStatus `json:"certificationStatus"`
	MonitoringStatus    models.MonitoringStatus    `json:"monitoringStatus"`
	IssueDate           models.Date                `json:"issueDate"`
	ExpiryDate          models.Date                `json:"expiryDate"`
	ScopeStatement      string                     `json:"scopeStatement"`
	RevocationHistory   []models.RevocationEvent   `json:"revocationHistory"`
	Verified            bool                       `json:"verified"`
	RegistryURL         string                     `json:"registryUrl"`
}

// NewVerification projects e. Verified is derived from the certification
// status alone; expiry and monitoring status do not affect it.
func NewVerification(e models.RegistryEntry, siteURL string) Verification {
	history := e.RevocationHistory
	if history == nil {
		history = []models.RevocationEvent{}
	}
	return Verification{
		CertificationID:     e.CertificationID,
		Organization:        e.Organization,
		SystemName:          e.SystemName,
		Category:            e.Category,
		CertificationLevel:  e.CertificationLevel,
		CertificationStatus: e.CertificationStatus,
		MonitoringStatus:    e.MonitoringStatus,
		IssueDate:           e.IssueDate,
		ExpiryDate:          e.ExpiryDate,
		ScopeStatement:      e.ScopeStatement,
		RevocationHistory:   history,
		Verified:            e.CertificationStatus.IsVerified(),
		RegistryURL:         RegistryURL(siteURL, e.CertificationID),
	}
}

// RegistryURL is the public registry page for certID.
func RegistryURL(siteURL string, certID id.CertificationID) string {
	return strings.TrimRight(siteURL, "/") + "/registry/" + url.PathEscape(certID.String())
}
