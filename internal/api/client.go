// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api is the single gateway through which all backend calls flow.
// It attaches the session cookies to every request, parses structured error
// payloads, and downgrades local auth state when any call answers 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/naimlawani01/pharmav2-dashboard/internal/logging"
)

// CredentialStore is the local store for the session tokens. The gateway
// reads tokens to replay them as cookies and clears them on 401.
type CredentialStore interface {
	LoadAccessToken() (string, error)
	LoadRefreshToken() (string, error)
	SaveAuthTokens(access, refresh string) error
	ClearAuth() error
}

// Client is the HTTP gateway to the pharmacy-network backend.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	log     zerolog.Logger

	// cbMu guards the single logout-callback slot. Registered once at
	// application start; a second registration overwrites the first.
	cbMu     sync.Mutex
	onLogout func()
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Used in tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger overrides the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a gateway for the given base URL. creds supplies the persisted
// session tokens; it may be nil for unauthenticated use.
func New(baseURL string, creds CredentialStore, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     logging.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogoutCallback registers the zero-argument callback invoked when any
// call answers 401. At most one callback is stored; a later registration
// replaces the earlier one.
func (c *Client) SetLogoutCallback(fn func()) {
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.onLogout = fn
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// postJSON performs a POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(b), "application/json", out)
}

// postForm performs a POST with a form-encoded body.
func (c *Client) postForm(ctx context.Context, path string, query url.Values, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, query, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// putJSON performs a PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(b), "application/json", out)
}

// delete performs a DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// do is the single choke point for backend traffic. Every response passes
// through the same status handling, so an expired session is detected
// uniformly no matter which call observes it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	c.attachCookies(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("request_id", requestID).Str("method", method).
			Str("url", logging.Mask(u)).Err(err).Msg("backend call failed")
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("request_id", requestID).Str("method", method).
		Str("url", logging.Mask(u)).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("backend call")

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		apiErr := newError(resp.StatusCode, raw, requestID)
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized()
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// attachCookies replays the persisted session tokens as the cookies the
// backend set at login time. Missing tokens are simply omitted.
func (c *Client) attachCookies(req *http.Request) {
	if c.creds == nil {
		return
	}
	if access, err := c.creds.LoadAccessToken(); err == nil && access != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
	}
	if refresh, err := c.creds.LoadRefreshToken(); err == nil && refresh != "" {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	}
}

// handleUnauthorized clears the local auth artifacts and notifies the
// registered callback. The original error still reaches the caller; nothing
// here terminates the process or forces a reload of any screen.
func (c *Client) handleUnauthorized() {
	if c.creds != nil {
		if err := c.creds.ClearAuth(); err != nil {
			c.log.Warn().Err(err).Msg("clearing auth tokens after 401")
		}
	}

	c.cbMu.Lock()
	fn := c.onLogout
	c.cbMu.Unlock()
	if fn != nil {
		fn()
	}
}

// saveTokens persists the tokens from a login/refresh response.
func (c *Client) saveTokens(access, refresh string) {
	if c.creds == nil {
		return
	}
	if err := c.creds.SaveAuthTokens(access, refresh); err != nil {
		c.log.Warn().Err(err).Msg("persisting session tokens")
	}
}
