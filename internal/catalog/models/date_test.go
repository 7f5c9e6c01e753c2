package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateJSON(t *testing.T) {
	d := MustDate("2025-06-30")

	b, err := json.Marshal(struct {
		Expiry Date `json:"expiry"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"expiry":"2025-06-30"}`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-30"`), &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"30/06/2025"`), &back))
}

func TestDateYAML(t *testing.T) {
	var doc struct {
		Issued Date `yaml:"issued"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("issued: \"2024-01-15\"\n"), &doc))
	assert.Equal(t, "2024-01-15", doc.Issued.String())

	err := yaml.Unmarshal([]byte("issued: \"15 Jan 2024\"\n"), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	c := ControlRequirement{ID: "ACR-1.01", EvidenceRequirements: []string{"a"}, RelatedControls: []string{"ACR-1.02"}}
	cp := c.Clone()
	cp.EvidenceRequirements[0] = "mutated"
	cp.RelatedControls[0] = "mutated"
	assert.Equal(t, "a", c.EvidenceRequirements[0])
	assert.Equal(t, "ACR-1.02", c.RelatedControls[0])

	e := RegistryEntry{RevocationHistory: []RevocationEvent{{Action: "Suspended"}}}
	ecp := e.Clone()
	ecp.RevocationHistory[0].Action = "mutated"
	assert.Equal(t, "Suspended", e.RevocationHistory[0].Action)
}
