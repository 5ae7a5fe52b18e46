package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Category
	}{
		{"empty defaults to technical", "", CategoryTechnical},
		{"technical", "technical", CategoryTechnical},
		{"soft", "soft", CategorySoft},
		{"soft synonym", "interpersonal", CategorySoft},
		{"hard", "hard", CategoryHard},
		{"hard synonym", "domain", CategoryHard},
		{"case insensitive", "SOFT", CategorySoft},
		{"whitespace tolerated", " Hard ", CategoryHard},
		{"unknown defaults to technical", "wizardry", CategoryTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCategory(tt.raw))
		})
	}
}

func TestParseCategory_Valid(t *testing.T) {
	for _, cat := range Categories {
		parsed, err := ParseCategory(string(cat))
		require.NoError(t, err)
		assert.Equal(t, cat, parsed)
	}
}

func TestParseCategory_CaseInsensitive(t *testing.T) {
	parsed, err := ParseCategory("Technical")
	require.NoError(t, err)
	assert.Equal(t, CategoryTechnical, parsed)
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("interpersonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interpersonal")
}
