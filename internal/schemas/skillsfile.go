// Package schemas provides JSON Schema validation for skills files exchanged
// via the CLI's import/export commands.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// skillsFileSchema is the JSON Schema for an exported skills document.
// Rating is optional: imported files re-enter the ledger unrated, matching the
// extraction import path, while exports still carry ratings for inspection.
const skillsFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "rating": {"type": "integer", "minimum": 0, "maximum": 10}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// SkillEntry is one skill in an exported skills document.
type SkillEntry struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Rating   int    `json:"rating,omitempty"`
}

// SkillsFile is the on-disk document produced by `skills export` and consumed
// by `skills import`.
type SkillsFile struct {
	Skills []SkillEntry `json:"skills"`
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("skills file failed schema validation: %s", strings.Join(msgs, "; "))
}

// ValidateSkillsFile checks a skills document against the embedded schema.
func ValidateSkillsFile(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(skillsFileSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate skills file: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return verr
	}
	return nil
}

// ParseSkillsFile validates and decodes a skills document.
func ParseSkillsFile(data []byte) (*SkillsFile, error) {
	if err := ValidateSkillsFile(data); err != nil {
		return nil, err
	}

	var file SkillsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skills file: %w", err)
	}
	return &file, nil
}
