// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nav

import (
	"context"
	"testing"

	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/session"
)

type fakeSession struct {
	snap       session.Snapshot
	bootstraps int
	// onBootstrap mutates snap the way a real resolution would.
	onBootstrap func(*fakeSession)
}

func (f *fakeSession) Bootstrap(ctx context.Context) {
	f.bootstraps++
	if f.onBootstrap != nil {
		f.onBootstrap(f)
	}
}

func (f *fakeSession) Snapshot() session.Snapshot { return f.snap }

type stubScreen struct {
	path string
	g    *guard.Guard
	runs int
}

func (s *stubScreen) Path() string { return s.path }

func (s *stubScreen) Run(ctx context.Context, r *Router) error {
	s.runs++
	return nil
}

func (s *stubScreen) Guard() *guard.Guard { return s.g }

// plainScreen has no guard.
type plainScreen struct {
	path string
	runs int
}

func (s *plainScreen) Path() string { return s.path }

func (s *plainScreen) Run(ctx context.Context, r *Router) error {
	s.runs++
	return nil
}

func authedSnap(role pharmanet.Role) session.Snapshot {
	return session.Snapshot{
		Fetched:       true,
		Authenticated: true,
		User:          &pharmanet.Me{ID: 1, Role: role},
	}
}

func TestOpenUnguardedScreenSkipsBootstrap(t *testing.T) {
	sess := &fakeSession{}
	r := NewRouter(sess)
	scr := &plainScreen{path: "/recherche"}
	r.Register(scr)

	if err := r.Open(context.Background(), "/recherche"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if scr.runs != 1 {
		t.Errorf("screen runs = %d, want 1", scr.runs)
	}
	if sess.bootstraps != 0 {
		t.Errorf("bootstraps = %d, want 0 for a public screen", sess.bootstraps)
	}
}

func TestOpenUnknownPath(t *testing.T) {
	r := NewRouter(&fakeSession{})
	if err := r.Open(context.Background(), "/nope"); err == nil {
		t.Error("Open() error = nil, want an unknown-path error")
	}
}

func TestOpenBootstrapsBeforeGuardedScreen(t *testing.T) {
	sess := &fakeSession{onBootstrap: func(f *fakeSession) {
		f.snap = authedSnap(pharmanet.RoleClient)
	}}
	r := NewRouter(sess)
	scr := &stubScreen{path: "/produits", g: guard.New("/produits", nil, "")}
	r.Register(scr)

	if err := r.Open(context.Background(), "/produits"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if sess.bootstraps != 1 {
		t.Errorf("bootstraps = %d, want 1", sess.bootstraps)
	}
	if scr.runs != 1 {
		t.Errorf("screen runs = %d, want 1", scr.runs)
	}
	if r.Current() != "/produits" {
		t.Errorf("Current() = %q, want %q", r.Current(), "/produits")
	}
}

func TestOpenSkipsBootstrapOnceResolved(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(pharmanet.RoleClient)}
	r := NewRouter(sess)
	scr := &stubScreen{path: "/produits", g: guard.New("/produits", nil, "")}
	r.Register(scr)

	_ = r.Open(context.Background(), "/produits")
	if sess.bootstraps != 0 {
		t.Errorf("bootstraps = %d, want 0 when the session is already resolved", sess.bootstraps)
	}
}

func TestOpenFollowsDenialRedirect(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(pharmanet.RoleClient)}
	r := NewRouter(sess)
	admin := &stubScreen{path: "/produits/new", g: guard.New("/produits/new", []pharmanet.Role{pharmanet.RoleAdmin}, "/produits")}
	list := &stubScreen{path: "/produits", g: guard.New("/produits", nil, "")}
	r.Register(admin, list)

	if err := r.Open(context.Background(), "/produits/new"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if admin.runs != 0 {
		t.Errorf("admin screen runs = %d, want 0", admin.runs)
	}
	if list.runs != 1 {
		t.Errorf("list screen runs = %d, want 1: the denial falls back there", list.runs)
	}
	if r.Current() != "/produits" {
		t.Errorf("Current() = %q, want %q after redirect", r.Current(), "/produits")
	}
}

func TestOpenAnonymousRedirectsToLogin(t *testing.T) {
	sess := &fakeSession{snap: session.Snapshot{Fetched: true}}
	r := NewRouter(sess)
	protected := &stubScreen{path: "/produits", g: guard.New("/produits", nil, "")}
	login := &plainScreen{path: guard.LoginPath}
	r.Register(protected, login)

	if err := r.Open(context.Background(), "/produits"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if login.runs != 1 {
		t.Errorf("login screen runs = %d, want 1", login.runs)
	}
	if protected.runs != 0 {
		t.Errorf("protected screen runs = %d, want 0", protected.runs)
	}
}

func TestOpenSpentLatchIsSilent(t *testing.T) {
	sess := &fakeSession{snap: session.Snapshot{Fetched: true}}
	r := NewRouter(sess)
	g := guard.New("/produits", nil, "")
	protected := &stubScreen{path: "/produits", g: g}
	login := &plainScreen{path: guard.LoginPath}
	r.Register(protected, login)

	_ = r.Open(context.Background(), "/produits")
	if login.runs != 1 {
		t.Fatalf("login runs = %d, want 1 after first denial", login.runs)
	}

	// Second attempt: the latch is spent, nothing renders and no error.
	if err := r.Open(context.Background(), "/produits"); err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	if login.runs != 1 {
		t.Errorf("login runs = %d, want still 1: spent latch must not redirect again", login.runs)
	}
	if protected.runs != 0 {
		t.Errorf("protected runs = %d, want 0", protected.runs)
	}
}

func TestOpenSpinnerCoversBootstrap(t *testing.T) {
	sess := &fakeSession{onBootstrap: func(f *fakeSession) {
		f.snap = authedSnap(pharmanet.RoleAdmin)
	}}
	r := NewRouter(sess)

	var started, stopped bool
	r.Spinner = func(text string) func() {
		started = true
		return func() { stopped = true }
	}
	r.Register(&stubScreen{path: "/produits", g: guard.New("/produits", nil, "")})

	if err := r.Open(context.Background(), "/produits"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !started || !stopped {
		t.Errorf("spinner started=%v stopped=%v, want both true", started, stopped)
	}
}
