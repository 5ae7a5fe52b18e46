package api

import (
	"context"
	"net/url"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Login exchanges credentials for a bearer token. The login endpoint follows
// the OAuth2 password flow and expects a form-encoded body. Storing the
// returned token is the caller's responsibility.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (*types.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("username", req.Username)
	form.Set("password", req.Password)

	var token types.TokenResponse
	if err := c.postForm(ctx, "/auth/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var user types.User
	if err := c.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
