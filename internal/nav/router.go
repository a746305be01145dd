// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nav routes between screens. Every screen has a path identity; a
// guarded screen is evaluated against the session before it runs, and a
// denial is followed to its fallback screen. The router owns the notion of
// "current path" the guards check against.
package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/logging"
	"github.com/naimlawani01/pharmav2-dashboard/internal/session"
)

// Screen is one addressable view of the application.
type Screen interface {
	Path() string
	Run(ctx context.Context, r *Router) error
}

// Guarded is a screen protected by a route guard.
type Guarded interface {
	Screen
	Guard() *guard.Guard
}

// Session is the slice of the session store the router needs.
type Session interface {
	Bootstrap(ctx context.Context)
	Snapshot() session.Snapshot
}

// Router dispatches paths to screens.
type Router struct {
	screens map[string]Screen
	session Session
	log     zerolog.Logger

	// Spinner renders a neutral loading indicator while the initial
	// identity check is unresolved. It returns a stop function. Overridable
	// for tests.
	Spinner func(text string) func()

	current string
}

// NewRouter builds a router over the given session.
func NewRouter(sess Session) *Router {
	return &Router{
		screens: make(map[string]Screen),
		session: sess,
		log:     logging.Get(),
		Spinner: func(string) func() { return func() {} },
	}
}

// Register adds screens to the routing table.
func (r *Router) Register(screens ...Screen) {
	for _, s := range screens {
		r.screens[s.Path()] = s
	}
}

// Current returns the path of the screen currently displayed.
func (r *Router) Current() string { return r.current }

// maxRedirects bounds a redirect chain; the guard latch makes longer chains
// impossible in practice.
const maxRedirects = 5

// Open displays the screen at path. For guarded screens the session is
// bootstrapped first (a no-op after the first resolution), the guard is
// evaluated, and a denial redirect is followed. The redirect is silent:
// pure auth/role denial shows no error banner.
func (r *Router) Open(ctx context.Context, path string) error {
	for hops := 0; hops <= maxRedirects; hops++ {
		scr, ok := r.screens[path]
		if !ok {
			return fmt.Errorf("nav: no screen at %q", path)
		}
		r.current = path

		g, guarded := scr.(Guarded)
		if !guarded {
			return scr.Run(ctx, r)
		}

		if snap := r.session.Snapshot(); !snap.Fetched || snap.Loading {
			stop := r.Spinner("Vérification de la session")
			r.session.Bootstrap(ctx)
			stop()
		}

		d := g.Guard().Evaluate(r.current, r.session.Snapshot())
		switch d.State {
		case guard.StateGranted:
			return scr.Run(ctx, r)
		case guard.StateDenied:
			if d.Redirect == "" {
				// Latch already spent; nothing more to do.
				return nil
			}
			r.log.Debug().Str("from", path).Str("to", d.Redirect).Msg("guard redirect")
			path = d.Redirect
		case guard.StateDetached:
			return nil
		default:
			// Unknown/Checking after a completed bootstrap means the
			// context was cancelled mid-check.
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}
	}
	return errors.New("nav: redirect loop")
}
