package main

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/skills"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillSpec(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantCat    skills.Category
		wantName   string
		wantRating int
		wantErr    bool
	}{
		{"basic", "technical:Go:9", skills.CategoryTechnical, "Go", 9, false},
		{"soft category", "soft:Communication:8", skills.CategorySoft, "Communication", 8, false},
		{"name containing colon", "technical:C: The Language:5", skills.CategoryTechnical, "C: The Language", 5, false},
		{"zero rating", "hard:SQL:0", skills.CategoryHard, "SQL", 0, false},
		{"missing rating", "technical:Go", "", "", 0, true},
		{"missing category", "Go:9", "", "", 0, true},
		{"unknown category", "mystic:Go:9", "", "", 0, true},
		{"rating above range", "technical:Go:11", "", "", 0, true},
		{"rating not a number", "technical:Go:high", "", "", 0, true},
		{"empty name", "technical::9", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, name, rating, err := parseSkillSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantRating, rating)
		})
	}
}

func TestParseCategoryName(t *testing.T) {
	cat, name, err := parseCategoryName("hard:SQL")
	require.NoError(t, err)
	assert.Equal(t, skills.CategoryHard, cat)
	assert.Equal(t, "SQL", name)

	_, _, err = parseCategoryName("SQL")
	require.Error(t, err)

	_, _, err = parseCategoryName("hard:")
	require.Error(t, err)
}

func TestParseRenameSpec(t *testing.T) {
	cat, oldName, newName, rating, err := parseRenameSpec("technical:Pyton>Python:7")
	require.NoError(t, err)
	assert.Equal(t, skills.CategoryTechnical, cat)
	assert.Equal(t, "Pyton", oldName)
	assert.Equal(t, "Python", newName)
	assert.Equal(t, 7, rating)

	_, _, _, _, err = parseRenameSpec("technical:Pyton:7")
	require.Error(t, err, "missing '>' separator")

	_, _, _, _, err = parseRenameSpec("technical:>Python:7")
	require.Error(t, err, "empty old name")

	_, _, _, _, err = parseRenameSpec("technical:Pyton>Python:12")
	require.Error(t, err, "rating out of range")
}

func TestPrintSnapshot(t *testing.T) {
	ledger := skills.NewLedger()
	ledger.Upsert(skills.CategoryTechnical, "Go", 9)
	ledger.ImportUnrated([]types.ExtractedSkill{{Name: "Terraform", Category: "technical"}})

	var buf bytes.Buffer
	printSnapshot(&buf, ledger.Snapshot())

	out := buf.String()
	assert.Contains(t, out, "Technical Skills (2)")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "Terraform")
	assert.Contains(t, out, "unrated (imported)")
	assert.Contains(t, out, "Soft Skills (0)")
	assert.Contains(t, out, "Hard Skills (0)")
}
