package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"ACR-1.1"},
			expected: []string{"ACR-1.1"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  ACR-1.1  ", "ACR-1.2  ", "  ACR-2.1"},
			expected: []string{"ACR-1.1", "ACR-1.2", "ACR-2.1"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"ACR-1.1", "ACR-1.2", "ACR-1.1", "ACR-2.1", "ACR-1.2"},
			expected: []string{"ACR-1.1", "ACR-1.2", "ACR-2.1"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"ACR-1.1", "", "  ", "ACR-1.2"},
			expected: []string{"ACR-1.1", "ACR-1.2"},
		},
		{
			name:     "combined: trim, dedupe, remove empty",
			input:    []string{"  ACR-1.1 ", "ACR-1.2", "ACR-1.1", "", "  ", "ACR-1.2"},
			expected: []string{"ACR-1.1", "ACR-1.2"},
		},
		{
			name:     "preserves case",
			input:    []string{"acr-1.1", "ACR-1.1", "Acr-1.1"},
			expected: []string{"acr-1.1", "ACR-1.1", "Acr-1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
