package api

import (
	"context"
	"io"
	"net/url"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// UploadTemplate uploads a resume template file (PDF or .tex) and returns the
// created template record.
func (c *Client) UploadTemplate(ctx context.Context, filename string, content io.Reader) (*types.Template, error) {
	var tmpl types.Template
	if err := c.postFile(ctx, "/templates/upload", filename, content, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// PreviewTemplate fetches the rendered PDF preview for a template by its
// unique ID. Returns the raw PDF bytes.
func (c *Client) PreviewTemplate(ctx context.Context, uniqueID string) ([]byte, error) {
	query := url.Values{}
	query.Set("unique_id", uniqueID)
	return c.getBytes(ctx, "/templates/preview", query)
}

// FinalizeTemplate publishes the current user's template and returns the
// finalized record with its public URLs.
func (c *Client) FinalizeTemplate(ctx context.Context) (*types.Template, error) {
	var tmpl types.Template
	if err := c.postJSON(ctx, "/templates/finalize", nil, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// DeleteTemplate removes a template and its published resources.
func (c *Client) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, "/templates/"+id.String(), nil)
}
