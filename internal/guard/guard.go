// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package guard implements the access decision every protected screen makes:
// wait for the initial identity check, then either grant the screen, or
// redirect exactly once to a fallback. The same truth table used to be
// re-derived per screen; here it lives in one place and each screen holds an
// instance parameterised by its required roles and fallback path.
package guard

import (
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/session"
)

// State is the guard's view of a screen's access status.
type State int

const (
	// StateUnknown means the initial identity check has not run yet.
	StateUnknown State = iota
	// StateChecking means an identity check is in flight.
	StateChecking
	// StateDenied means the check resolved and access is refused.
	StateDenied
	// StateGranted means the check resolved and access is allowed.
	StateGranted
	// StateDetached means the guard's screen is no longer the current one;
	// the guard takes no action on stale state.
	StateDetached
)

// LoginPath is the universal sign-in screen.
const LoginPath = "/login"

// Decision is the outcome of one guard evaluation. Redirect is non-empty on
// the first DENIED resolution only; repeat evaluations of the same denial
// keep the latch closed.
type Decision struct {
	State    State
	Redirect string
}

// Guard gates one screen. The zero value is not usable; construct with New.
type Guard struct {
	path     string
	roles    []pharmanet.Role // empty means any authenticated user
	fallback string

	redirected bool
}

// New builds a guard for the screen at path. roles lists the roles allowed
// in; an empty list admits any authenticated user. fallback is where a
// denied visitor is sent; it defaults to the login screen.
func New(path string, roles []pharmanet.Role, fallback string) *Guard {
	if fallback == "" {
		fallback = LoginPath
	}
	return &Guard{path: path, roles: roles, fallback: fallback}
}

// Path returns the screen path this guard was installed for.
func (g *Guard) Path() string { return g.path }

// Evaluate runs the truth table against the current path and session state.
// It must be called again whenever either changes; the redirect latch makes
// repeated calls with the same denial safe.
func (g *Guard) Evaluate(currentPath string, snap session.Snapshot) Decision {
	if currentPath != g.path {
		return Decision{State: StateDetached}
	}
	if snap.Loading {
		return Decision{State: StateChecking}
	}
	if !snap.Fetched {
		return Decision{State: StateUnknown}
	}

	if snap.Authenticated && g.roleAllowed(snap.User) {
		// A later grant (e.g. same-screen login) re-arms the latch.
		g.redirected = false
		return Decision{State: StateGranted}
	}

	d := Decision{State: StateDenied}
	if !g.redirected {
		g.redirected = true
		d.Redirect = g.fallback
	}
	return d
}

func (g *Guard) roleAllowed(user *pharmanet.Me) bool {
	if user == nil {
		return false
	}
	if len(g.roles) == 0 {
		return true
	}
	for _, r := range g.roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// DashboardPath maps a role to its dashboard screen. Unknown roles land on
// the client dashboard, the least privileged one.
func DashboardPath(role pharmanet.Role) string {
	switch role {
	case pharmanet.RoleAdmin:
		return "/dashboard/admin"
	case pharmanet.RolePharmacien:
		return "/dashboard/pharmacien"
	default:
		return "/dashboard/client"
	}
}

// LoginRedirect implements the login screen's inverse rule: an already
// authenticated arrival is sent straight to the role dashboard, except while
// a credential submission is pending (the submit handler performs its own
// redirect and must not be raced).
func LoginRedirect(snap session.Snapshot, submitting bool) string {
	if submitting || snap.Loading || !snap.Fetched {
		return ""
	}
	if !snap.Authenticated || snap.User == nil {
		return ""
	}
	return DashboardPath(snap.User.Role)
}
