// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package token inspects locally stored access tokens for display purposes.
// The decode is unverified on purpose; the token is opaque to this client
// and only the backend judges its validity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what the CLI shows about a stored token.
type Info struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect decodes the claims of a JWT without verifying its signature.
func Inspect(raw string) (Info, error) {
	var info Info

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return info, err
	}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return info, errors.New("token has no expiry claim")
	}
	info.ExpiresAt = exp.Time
	return info, nil
}

// Expired reports whether the token's expiry has passed.
func (i Info) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
