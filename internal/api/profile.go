package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// AddExperience creates a work experience entry on the user's profile.
func (c *Client) AddExperience(ctx context.Context, req types.WorkExperienceCreate) (*types.WorkExperience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var exp types.WorkExperience
	if err := c.postJSON(ctx, "/profile/profile/experience", req, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// UpdateExperience replaces an existing work experience entry.
func (c *Client) UpdateExperience(ctx context.Context, id uuid.UUID, req types.WorkExperienceCreate) (*types.WorkExperience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var exp types.WorkExperience
	if err := c.putJSON(ctx, "/profile/profile/experience/"+id.String(), req, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// DeleteExperience removes a work experience entry.
func (c *Client) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, "/profile/profile/experience/"+id.String(), nil)
}

// ListExperiences returns all work experience entries on the user's profile.
func (c *Client) ListExperiences(ctx context.Context) ([]types.WorkExperience, error) {
	var exps []types.WorkExperience
	if err := c.getJSON(ctx, "/profile/profile/experiences", nil, &exps); err != nil {
		return nil, err
	}
	return exps, nil
}
