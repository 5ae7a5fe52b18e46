package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillsFile_Valid(t *testing.T) {
	data := []byte(`{"skills":[{"name":"Go","category":"technical","rating":9},{"name":"Communication"}]}`)

	file, err := ParseSkillsFile(data)
	require.NoError(t, err)
	require.Len(t, file.Skills, 2)
	assert.Equal(t, "Go", file.Skills[0].Name)
	assert.Equal(t, 9, file.Skills[0].Rating)
	assert.Empty(t, file.Skills[1].Category)
}

func TestValidateSkillsFile_RejectsEmptyList(t *testing.T) {
	err := ValidateSkillsFile([]byte(`{"skills":[]}`))
	require.Error(t, err)
}

func TestValidateSkillsFile_RejectsMissingName(t *testing.T) {
	err := ValidateSkillsFile([]byte(`{"skills":[{"category":"soft"}]}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateSkillsFile_RejectsOutOfRangeRating(t *testing.T) {
	err := ValidateSkillsFile([]byte(`{"skills":[{"name":"Go","rating":11}]}`))
	require.Error(t, err)
}

func TestValidateSkillsFile_RejectsUnknownFields(t *testing.T) {
	err := ValidateSkillsFile([]byte(`{"skills":[{"name":"Go","weight":0.5}]}`))
	require.Error(t, err)
}

func TestParseSkillsFile_MalformedJSON(t *testing.T) {
	_, err := ParseSkillsFile([]byte(`{"skills": [`))
	require.Error(t, err)
}
