package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase unchanged", "python", "python"},
		{"case folded", "Python", "python"},
		{"all caps", "SQL", "sql"},
		{"surrounding whitespace trimmed", "  Go  ", "go"},
		{"tabs and newlines trimmed", "\tKubernetes\n", "kubernetes"},
		{"interior whitespace kept", "distributed systems", "distributed systems"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
