package api

import (
	"context"
	"io"
	"net/url"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// SearchSkills returns ranked skill matches for a free-text query.
func (c *Client) SearchSkills(ctx context.Context, query string) ([]types.SkillResult, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}

	var results []types.SkillResult
	if err := c.getJSON(ctx, "/skills/skills", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ExtractSkills uploads a resume file and returns the skill names and
// categories the extraction service identified in it.
func (c *Client) ExtractSkills(ctx context.Context, filename string, content io.Reader) ([]types.ExtractedSkill, error) {
	var results []types.ExtractedSkill
	if err := c.postFile(ctx, "/skills/skills/extract", filename, content, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// MySkills returns the authenticated user's persisted skills. This is the
// authoritative baseline the skill ledger loads from.
func (c *Client) MySkills(ctx context.Context) ([]types.UserSkill, error) {
	var saved []types.UserSkill
	if err := c.getJSON(ctx, "/skills/user-skills/me", nil, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// AddSkill persists a single skill with its category and rating.
func (c *Client) AddSkill(ctx context.Context, req types.SingleSkillCreate) (*types.UserSkill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var saved types.UserSkill
	if err := c.postJSON(ctx, "/skills/user-skills/single", req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveSkillsBatch persists all three skill categories in one request. The
// returned records are the server's canonical state; callers reconcile them
// back into the ledger. The batch is all-or-nothing from the client's view.
func (c *Client) SaveSkillsBatch(ctx context.Context, payload types.BatchSkillsByCategory) ([]types.UserSkill, error) {
	var saved []types.UserSkill
	if err := c.postJSON(ctx, "/skills/user-skills/batch", payload, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}
