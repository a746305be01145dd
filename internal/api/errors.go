// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is one entry of a structured validation failure, as the backend
// reports them: a location path into the request plus a message.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// Error is the failure of a backend call. Status is the HTTP status code;
// Detail is the server-supplied detail payload when present: a string, a list
// of field errors, or arbitrary JSON.
type Error struct {
	Status    int
	Detail    any
	RequestID string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message(), e.Status)
}

// Message flattens Detail into a single human-readable string.
// A string detail is used as-is. A field-error list becomes one line per
// entry, the location path (minus its leading segment) joined to the message
// with ": ". Any other shape is serialized to text. An absent detail falls
// back to the HTTP status text.
func (e *Error) Message() string {
	switch d := e.Detail.(type) {
	case nil:
		return genericMessage(e.Status)
	case string:
		if d == "" {
			return genericMessage(e.Status)
		}
		return d
	case []FieldError:
		if len(d) == 0 {
			return genericMessage(e.Status)
		}
		lines := make([]string, 0, len(d))
		for _, fe := range d {
			// The leading location segment names the request part ("body",
			// "query") and is always dropped, even when nothing follows it.
			loc := fe.Loc
			if len(loc) > 0 {
				loc = loc[1:]
			}
			if len(loc) == 0 {
				lines = append(lines, fe.Msg)
				continue
			}
			lines = append(lines, strings.Join(loc, ".")+": "+fe.Msg)
		}
		return strings.Join(lines, "\n")
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return genericMessage(e.Status)
		}
		return string(b)
	}
}

// IsValidation reports whether the error carries field-level validation
// details. Validation failures never touch session state.
func (e *Error) IsValidation() bool {
	_, ok := e.Detail.([]FieldError)
	return ok && e.Status != http.StatusUnauthorized
}

func genericMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

// newError builds an *Error from a response body of the form
// {"detail": <string | [{"loc","msg"}] | any>}.
func newError(status int, body []byte, requestID string) *Error {
	e := &Error{Status: status, RequestID: requestID}
	if len(body) == 0 {
		return e
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return e
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		e.Detail = s
		return e
	}
	var fields []FieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 && fields[0].Msg != "" {
		e.Detail = fields
		return e
	}
	var raw any
	if err := json.Unmarshal(envelope.Detail, &raw); err == nil {
		e.Detail = raw
	}
	return e
}

// StatusOf returns the HTTP status carried by err, or 0 for transport errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
