package types

import (
	"time"

	"github.com/google/uuid"
)

// Template represents a resume template record as returned by the backend.
type Template struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content"`
	UserID      uuid.UUID  `json:"user_id"`
	TexURL      *string    `json:"tex_url"`
	PdfURL      *string    `json:"pdf_url"`
	UniqueID    string     `json:"unique_id"`
	IsFinalized bool       `json:"is_finalized"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// FinalizedResources holds the public URLs produced by finalizing a template.
type FinalizedResources struct {
	TexURL string `json:"tex_url"`
	PdfURL string `json:"pdf_url"`
}
