// Package types provides type definitions for structured data exchanged with the resume-optimizer backend.
package types

// SkillResult represents a skill returned by the skill search endpoint.
type SkillResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
}

// ExtractedSkill represents one entry of an extraction response.
// Category may be empty; classification happens client-side at the boundary.
type ExtractedSkill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// UserSkill represents a persisted user skill as returned by the backend.
type UserSkill struct {
	ID      int         `json:"id"`
	SkillID int         `json:"skill_id"`
	Rating  int         `json:"rating"`
	Skill   SkillResult `json:"skill"`
}

// SkillWithRating is the batch-save wire representation of a single skill.
type SkillWithRating struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// BatchSkillsByCategory is the payload for the batch skill-save endpoint.
// Field names mirror the backend contract exactly.
type BatchSkillsByCategory struct {
	TechnicalSkills []SkillWithRating `json:"technical_skills"`
	SoftSkills      []SkillWithRating `json:"soft_skills"`
	HardSkills      []SkillWithRating `json:"hard_skills"`
}

// SingleSkillCreate is the payload for saving one skill with its category.
type SingleSkillCreate struct {
	Name     string `json:"name" validate:"required,min=1"`
	Rating   int    `json:"rating" validate:"min=0,max=10"`
	Category string `json:"category" validate:"required"`
}

// Validate validates the SingleSkillCreate using the validator.
func (r *SingleSkillCreate) Validate() error {
	return validate.Struct(r)
}
