// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "string detail used as-is",
			err:  &Error{Status: 401, Detail: "Email ou mot de passe incorrect"},
			want: "Email ou mot de passe incorrect",
		},
		{
			name: "single field error drops the leading location segment",
			err: &Error{Status: 422, Detail: []FieldError{
				{Loc: []string{"body", "nom"}, Msg: "field required"},
			}},
			want: "nom: field required",
		},
		{
			name: "multiple field errors become one line each",
			err: &Error{Status: 422, Detail: []FieldError{
				{Loc: []string{"body", "nom"}, Msg: "field required"},
				{Loc: []string{"body", "prix_unitaire"}, Msg: "ensure this value is greater than 0"},
			}},
			want: "nom: field required\nprix_unitaire: ensure this value is greater than 0",
		},
		{
			name: "nested location joins with dots",
			err: &Error{Status: 422, Detail: []FieldError{
				{Loc: []string{"body", "pharmacie", "nom"}, Msg: "field required"},
			}},
			want: "pharmacie.nom: field required",
		},
		{
			name: "single-segment location keeps the message alone",
			err: &Error{Status: 422, Detail: []FieldError{
				{Loc: []string{"body"}, Msg: "value is not a valid dict"},
			}},
			want: "value is not a valid dict",
		},
		{
			name: "absent detail falls back to status text",
			err:  &Error{Status: 503},
			want: "Service Unavailable",
		},
		{
			name: "empty string detail falls back to status text",
			err:  &Error{Status: 404, Detail: ""},
			want: "Not Found",
		},
		{
			name: "arbitrary detail is serialized",
			err:  &Error{Status: 500, Detail: map[string]any{"code": "oops"}},
			want: `{"code":"oops"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "string detail",
			status:      401,
			body:        `{"detail": "Not authenticated"}`,
			wantMessage: "Not authenticated",
		},
		{
			name:        "field error list",
			status:      422,
			body:        `{"detail": [{"loc": ["body", "nom"], "msg": "field required", "type": "value_error.missing"}]}`,
			wantMessage: "nom: field required",
		},
		{
			name:        "field error with bare location",
			status:      422,
			body:        `{"detail": [{"loc": ["body"], "msg": "value is not a valid dict", "type": "type_error.dict"}]}`,
			wantMessage: "value is not a valid dict",
		},
		{
			name:        "object detail",
			status:      500,
			body:        `{"detail": {"reason": "db"}}`,
			wantMessage: `{"reason":"db"}`,
		},
		{
			name:        "empty body",
			status:      502,
			body:        "",
			wantMessage: "Bad Gateway",
		},
		{
			name:        "non-JSON body",
			status:      500,
			body:        "<html>Internal Server Error</html>",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "no detail key",
			status:      404,
			body:        `{"error": "nope"}`,
			wantMessage: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newError(tt.status, []byte(tt.body), "req-1")
			if e.Status != tt.status {
				t.Errorf("Status = %d, want %d", e.Status, tt.status)
			}
			if got := e.Message(); got != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	withFields := &Error{Status: 422, Detail: []FieldError{{Loc: []string{"body", "nom"}, Msg: "field required"}}}
	if !withFields.IsValidation() {
		t.Error("IsValidation() = false for a 422 with field errors, want true")
	}
	if (&Error{Status: 401, Detail: "Not authenticated"}).IsValidation() {
		t.Error("IsValidation() = true for a string-detail 401, want false")
	}
}

func TestStatusOf(t *testing.T) {
	apiErr := &Error{Status: 404}
	if got := StatusOf(apiErr); got != 404 {
		t.Errorf("StatusOf(apiErr) = %d, want 404", got)
	}
	if got := StatusOf(fmt.Errorf("wrapped: %w", apiErr)); got != 404 {
		t.Errorf("StatusOf(wrapped) = %d, want 404", got)
	}
	if got := StatusOf(errors.New("plain")); got != 0 {
		t.Errorf("StatusOf(plain) = %d, want 0", got)
	}
}
