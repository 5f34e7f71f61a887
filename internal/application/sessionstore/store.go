// Package sessionstore owns the in-memory session and its persisted
// mirror. It is the only process-wide mutable resource: many components
// read it, but writes go exclusively through its own operations.
package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"companion/internal/domain/session"
)

// ErrNoSession is returned by operations that require a signed-in user.
// Hitting it from UpdateUser indicates a wiring defect in the caller,
// not a runtime condition, so it is logged loudly.
var ErrNoSession = errors.New("no active session")

// Storage is the persistence boundary (see adapters/storage/session).
type Storage interface {
	Load(ctx context.Context) (session.Session, bool, error)
	Save(ctx context.Context, s session.Session) error
	SaveUser(ctx context.Context, u session.User) error
	Clear(ctx context.Context) error
}

// Store is the single source of truth for "who is logged in".
//
// Until Rehydrate completes, Loading reports true and consumers must
// treat the session as unknown, not absent. User and token always
// change together: partial sessions are never observable.
type Store struct {
	mu      sync.Mutex
	storage Storage
	current session.Session
	present bool
	loading bool
}

// New creates a Store in the loading state.
func New(storage Storage) *Store {
	return &Store{storage: storage, loading: true}
}

// Rehydrate reads the persisted session, invoked once at process start.
// Storage failures and corrupt entries both resolve to signed-out: the
// user can always recover by signing in again.
// POST: Loading reports false regardless of outcome
func (s *Store) Rehydrate(ctx context.Context) {
	sess, ok, err := s.storage.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		slog.Error("session_event", "event", "rehydrate_failed", "error", err.Error())
		s.current, s.present = session.Session{}, false
		return
	}
	if !ok {
		s.current, s.present = session.Session{}, false
		slog.Info("session_event", "event", "rehydrated_signed_out")
		return
	}
	s.current, s.present = sess, true
	slog.Info("session_event", "event", "rehydrated", "user_id", sess.User.ID)
}

// SignIn persists the session, then updates memory. If persistence
// fails the in-memory state is left unchanged — the caller must not
// assume success.
// PRE: u and token were issued together by the authentication endpoint
// POST: On success, Current returns the new session
func (s *Store) SignIn(ctx context.Context, u session.User, token string) error {
	sess := session.Session{User: u, Token: token}
	if err := s.storage.Save(ctx, sess); err != nil {
		slog.Error("session_event", "event", "sign_in_persist_failed", "user_id", u.ID, "error", err.Error())
		return err
	}

	s.mu.Lock()
	s.current, s.present, s.loading = sess, true, false
	s.mu.Unlock()

	slog.Info("session_event", "event", "signed_in", "user_id", u.ID, "role", u.Role)
	return nil
}

// SignOut clears memory and removes the persisted entries. Idempotent;
// memory is cleared even if the storage delete fails, since the user's
// intent to leave must win over a flaky disk.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	wasPresent := s.present
	s.current, s.present, s.loading = session.Session{}, false, false
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		slog.Error("session_event", "event", "sign_out_clear_failed", "error", err.Error())
		return err
	}
	if wasPresent {
		slog.Info("session_event", "event", "signed_out")
	}
	return nil
}

// UpdateUser overwrites only the user record after a profile edit; the
// token is untouched.
func (s *Store) UpdateUser(ctx context.Context, u session.User) error {
	s.mu.Lock()
	present := s.present
	s.mu.Unlock()
	if !present {
		slog.Error("session_event", "event", "update_user_without_session", "user_id", u.ID)
		return ErrNoSession
	}

	if err := s.storage.SaveUser(ctx, u); err != nil {
		slog.Error("session_event", "event", "update_user_persist_failed", "user_id", u.ID, "error", err.Error())
		return err
	}

	s.mu.Lock()
	s.current.User = u
	s.mu.Unlock()
	return nil
}

// Current returns the session. The second return is false while loading
// or signed out; callers that care about the difference check Loading.
func (s *Store) Current() (session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || !s.present {
		return session.Session{}, false
	}
	return s.current, true
}

// Loading reports whether rehydration has not completed yet.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Token returns the current bearer token, or "" when signed out. Wired
// into the API client's per-request token read.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return ""
	}
	return s.current.Token
}
