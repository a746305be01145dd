// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/url"

	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
)

// Register creates a new identity. It does not open a session; callers chain
// into Login afterwards.
func (c *Client) Register(ctx context.Context, in pharmanet.UserCreate) (*pharmanet.User, error) {
	var out pharmanet.User
	if err := c.postJSON(ctx, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session. The backend expects the OAuth2
// password form (username/password fields) and sets the session cookies when
// use_cookie is requested; the token payload is also persisted locally so
// later invocations can replay it.
func (c *Client) Login(ctx context.Context, email, motDePasse string) (*pharmanet.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", motDePasse)

	query := url.Values{}
	query.Set("use_cookie", "true")

	var out pharmanet.AuthResponse
	if err := c.postForm(ctx, "/api/auth/login", query, form, &out); err != nil {
		return nil, err
	}
	c.saveTokens(out.AccessToken, out.RefreshToken)
	return &out, nil
}

// Logout invalidates the server-side session. Best-effort from the caller's
// perspective; local cleanup happens regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/auth/logout", nil, nil)
}

// Me returns the identity bound to the current session cookie, or a 401
// error when no valid session exists.
func (c *Client) Me(ctx context.Context) (*pharmanet.Me, error) {
	var out pharmanet.Me
	if err := c.get(ctx, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges the refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.postJSON(ctx, "/api/auth/refresh", nil, &out); err != nil {
		return "", err
	}
	c.saveTokens(out.AccessToken, "")
	return out.AccessToken, nil
}
