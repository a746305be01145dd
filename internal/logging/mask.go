// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=|mot_de_passe=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reCookie   = regexp.MustCompile(`(?i)((?:access_token|refresh_token)=)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers credential form fields, bearer tokens, and the session cookies.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reCookie.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	return out
}
