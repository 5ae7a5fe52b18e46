package types

import (
	"time"

	"github.com/google/uuid"
)

// WorkExperienceCreate is the payload for creating or updating a work experience entry.
type WorkExperienceCreate struct {
	CompanyName string     `json:"company_name" validate:"required,min=1"`
	Position    string     `json:"position" validate:"required,min=1"`
	Location    string     `json:"location" validate:"required"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description" validate:"required"`
}

// WorkExperience represents a persisted work experience entry.
type WorkExperience struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	CompanyName string     `json:"company_name"`
	Position    string     `json:"position"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
}

// Validate validates the WorkExperienceCreate using the validator.
func (r *WorkExperienceCreate) Validate() error {
	return validate.Struct(r)
}
