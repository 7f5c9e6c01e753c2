package models

import (
	"slices"

	id "ara/pkg/domain"
)

// RevocationEvent is one entry in a certification's status history.
type RevocationEvent struct {
	Date   Date   `json:"date" yaml:"date"`
	Action string `json:"action" yaml:"action"`
	Reason string `json:"reason" yaml:"reason"`
}

// RegistryEntry is a published certification record.
//
// Invariants (checked at catalog load):
//   - CertificationID is unique within the registry
//   - IssueDate is not after ExpiryDate
//   - enum fields hold canonical values
type RegistryEntry struct {
	CertificationID     id.CertificationID  `json:"certificationId" yaml:"certificationId"`
	Organization        string              `json:"organization" yaml:"organization"`
	SystemName          string              `json:"systemName" yaml:"systemName"`
	Category            Category            `json:"category" yaml:"category"`
	CertificationLevel  Level               `json:"certificationLevel" yaml:"certificationLevel"`
	IssueDate           Date                `json:"issueDate" yaml:"issueDate"`
	ExpiryDate          Date                `json:"expiryDate" yaml:"expiryDate"`
	MonitoringStatus    MonitoringStatus    `json:"monitoringStatus" yaml:"monitoringStatus"`
	CertificationStatus CertificationStatus `json:"certificationStatus" yaml:"certificationStatus"`
	ScopeStatement      string              `json:"scopeStatement" yaml:"scopeStatement"`
	Industry            string              `json:"industry" yaml:"industry"`
	RevocationHistory   []RevocationEvent   `json:"revocationHistory" yaml:"revocationHistory"`
}

// Clone returns a copy that shares no slices with e.
func (e RegistryEntry) Clone() RegistryEntry {
	e.RevocationHistory = slices.Clone(e.RevocationHistory)
	return e
}
