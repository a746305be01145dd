// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the process-wide authentication state: the current
// identity, whether the initial identity check has run, and whether a check
// is in flight. It is the only writer of that state; screens read snapshots
// and the gateway signals it through a registered callback.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/naimlawani01/pharmav2-dashboard/internal/logging"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
)

// IdentityClient is the slice of the gateway the store needs: the who-am-I
// lookup and the server-side logout.
type IdentityClient interface {
	Me(ctx context.Context) (*pharmanet.Me, error)
	Logout(ctx context.Context) error
}

// CredentialStore clears locally persisted tokens.
type CredentialStore interface {
	ClearAuth() error
}

// Snapshot is a point-in-time read of the session state.
type Snapshot struct {
	User          *pharmanet.Me
	Authenticated bool
	Loading       bool
	Fetched       bool
}

// Store is the session state machine. Constructed once at application start
// and torn down never; Logout is the only full reset.
type Store struct {
	ident IdentityClient
	creds CredentialStore
	log   zerolog.Logger

	mu            sync.Mutex
	user          *pharmanet.Me
	authenticated bool
	loading       bool
	fetched       bool

	// generation increments on every logout so a bootstrap result that
	// lands after a supervening logout is discarded instead of resurrecting
	// the session.
	generation uint64
	// inflight is closed when the current bootstrap fetch resolves, letting
	// concurrent callers wait on the same network call instead of issuing
	// another.
	inflight chan struct{}
}

// New constructs a session store around its collaborators.
func New(ident IdentityClient, creds CredentialStore) *Store {
	return &Store{ident: ident, creds: creds, log: logging.Get()}
}

// Bootstrap performs the at-most-once identity check. If a previous call has
// already resolved, it returns immediately without a network call. If a fetch
// is in flight, the caller waits for that fetch rather than starting another.
// All failures, 401 included, are absorbed into the signed-out state; the
// caller can always render afterwards.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.fetched && !s.loading {
		s.mu.Unlock()
		return
	}
	if s.loading {
		ch := s.inflight
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
		}
		return
	}

	s.loading = true
	ch := make(chan struct{})
	s.inflight = ch
	gen := s.generation
	s.mu.Unlock()

	me, err := s.ident.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	close(ch)

	if s.generation != gen {
		// A logout superseded this fetch; its result is stale.
		s.log.Debug().Msg("discarding stale bootstrap result")
		return
	}

	s.fetched = true
	if err != nil {
		s.log.Debug().Err(err).Msg("identity check resolved signed out")
		s.user = nil
		s.authenticated = false
		return
	}
	s.user = me
	s.authenticated = true
}

// RecordLogin installs the identity obtained from an explicit credential
// login. The session counts as checked from here on.
func (s *Store) RecordLogin(me *pharmanet.Me) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = me
	s.authenticated = true
	s.fetched = true
}

// Logout invalidates the server-side session (best-effort; errors are logged
// and swallowed), clears local tokens, and resets the state machine entirely.
// This is the one path that resets the fetched flag, so a later Bootstrap
// will re-check with the backend.
func (s *Store) Logout(ctx context.Context) {
	if err := s.ident.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("remote logout failed")
	}
	if s.creds != nil {
		if err := s.creds.ClearAuth(); err != nil {
			s.log.Warn().Err(err).Msg("clearing local tokens")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.fetched = false
	s.generation++
}

// ForceLogout is invoked by the gateway when any call answers 401. It is
// synchronous and performs no network call: the server already rejected the
// session, so the fetched flag stays true and no re-check is scheduled.
func (s *Store) ForceLogout() {
	if s.creds != nil {
		if err := s.creds.ClearAuth(); err != nil {
			s.log.Warn().Err(err).Msg("clearing local tokens")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.fetched = true
	s.generation++
}

// HasRole reports whether the current user holds the given role.
func (s *Store) HasRole(role pharmanet.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == role
}

// Snapshot returns the current state for guard evaluation.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		User:          s.user,
		Authenticated: s.authenticated,
		Loading:       s.loading,
		Fetched:       s.fetched,
	}
}
