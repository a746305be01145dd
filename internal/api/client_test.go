// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type memCreds struct {
	access     string
	refresh    string
	clearCalls int32
}

func (m *memCreds) LoadAccessToken() (string, error)  { return m.access, nil }
func (m *memCreds) LoadRefreshToken() (string, error) { return m.refresh, nil }

func (m *memCreds) SaveAuthTokens(access, refresh string) error {
	if access != "" {
		m.access = access
	}
	if refresh != "" {
		m.refresh = refresh
	}
	return nil
}

func (m *memCreds) ClearAuth() error {
	atomic.AddInt32(&m.clearCalls, 1)
	m.access, m.refresh = "", ""
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, creds CredentialStore) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, creds, 5*time.Second)
}

func TestRequestCarriesSessionCookies(t *testing.T) {
	var gotAccess, gotRefresh string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("access_token"); err == nil {
			gotAccess = ck.Value
		}
		if ck, err := r.Cookie("refresh_token"); err == nil {
			gotRefresh = ck.Value
		}
		w.Write([]byte(`{}`))
	}, &memCreds{access: "acc-1", refresh: "ref-1"})

	var out map[string]any
	if err := c.get(context.Background(), "/api/auth/me", nil, &out); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if gotAccess != "acc-1" {
		t.Errorf("access_token cookie = %q, want %q", gotAccess, "acc-1")
	}
	if gotRefresh != "ref-1" {
		t.Errorf("refresh_token cookie = %q, want %q", gotRefresh, "ref-1")
	}
}

func TestRequestCarriesRequestID(t *testing.T) {
	var gotID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}, nil)

	var out map[string]any
	if err := c.get(context.Background(), "/api/produits/", nil, &out); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if gotID == "" {
		t.Error("X-Request-ID header is empty, want a generated id")
	}
}

func TestUnauthorizedClearsCredsAndNotifiesOnce(t *testing.T) {
	creds := &memCreds{access: "acc-1", refresh: "ref-1"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Not authenticated"}`))
	}, creds)

	var callbacks int32
	c.SetLogoutCallback(func() { atomic.AddInt32(&callbacks, 1) })

	err := c.get(context.Background(), "/api/auth/me", nil, &map[string]any{})
	if err == nil {
		t.Fatal("get() error = nil, want the 401 to reach the caller")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("get() error = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message() != "Not authenticated" {
		t.Errorf("Message() = %q, want %q", apiErr.Message(), "Not authenticated")
	}
	if got := atomic.LoadInt32(&callbacks); got != 1 {
		t.Errorf("logout callbacks = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&creds.clearCalls); got != 1 {
		t.Errorf("ClearAuth calls = %d, want 1", got)
	}
	if creds.access != "" || creds.refresh != "" {
		t.Error("tokens survived the 401")
	}
}

func TestUnauthorizedWithoutCallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	// No callback registered, no creds: the error still surfaces cleanly.
	err := c.get(context.Background(), "/api/auth/me", nil, &map[string]any{})
	if StatusOf(err) != http.StatusUnauthorized {
		t.Errorf("StatusOf() = %d, want 401", StatusOf(err))
	}
}

func TestLaterCallbackReplacesEarlier(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	var first, second int32
	c.SetLogoutCallback(func() { atomic.AddInt32(&first, 1) })
	c.SetLogoutCallback(func() { atomic.AddInt32(&second, 1) })

	_ = c.get(context.Background(), "/api/auth/me", nil, nil)

	if atomic.LoadInt32(&first) != 0 {
		t.Error("replaced callback was still invoked")
	}
	if atomic.LoadInt32(&second) != 1 {
		t.Error("active callback was not invoked")
	}
}

func TestValidationErrorKeepsSessionIntact(t *testing.T) {
	creds := &memCreds{access: "acc-1"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [{"loc": ["body", "nom"], "msg": "field required"}]}`))
	}, creds)

	var callbacks int32
	c.SetLogoutCallback(func() { atomic.AddInt32(&callbacks, 1) })

	err := c.postJSON(context.Background(), "/api/produits/", map[string]any{}, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("postJSON() error = %T, want *Error", err)
	}
	if !apiErr.IsValidation() {
		t.Error("IsValidation() = false, want true")
	}
	if atomic.LoadInt32(&callbacks) != 0 {
		t.Error("a 422 must not trigger the logout callback")
	}
	if creds.access != "acc-1" {
		t.Error("a 422 must not clear local tokens")
	}
}

func TestLoginPersistsTokens(t *testing.T) {
	creds := &memCreds{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("username") != "a@b.fr" || r.FormValue("password") != "secret" {
			t.Errorf("form = %v, want username/password fields", r.Form)
		}
		if r.URL.Query().Get("use_cookie") != "true" {
			t.Errorf("use_cookie = %q, want %q", r.URL.Query().Get("use_cookie"), "true")
		}
		w.Write([]byte(`{"access_token": "new-acc", "refresh_token": "new-ref", "token_type": "bearer"}`))
	}, creds)

	resp, err := c.Login(context.Background(), "a@b.fr", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken != "new-acc" {
		t.Errorf("AccessToken = %q, want %q", resp.AccessToken, "new-acc")
	}
	if creds.access != "new-acc" || creds.refresh != "new-ref" {
		t.Errorf("persisted tokens = (%q, %q), want the login payload", creds.access, creds.refresh)
	}
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	if err := c.delete(context.Background(), "/api/produits/3"); err != nil {
		t.Errorf("delete() error = %v", err)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil, 200*time.Millisecond)
	err := c.get(context.Background(), "/api/produits/", nil, &map[string]any{})
	if err == nil {
		t.Fatal("get() error = nil, want a transport failure")
	}
	if StatusOf(err) != 0 {
		t.Errorf("StatusOf() = %d, want 0 for transport errors", StatusOf(err))
	}
}
