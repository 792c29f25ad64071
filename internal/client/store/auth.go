package store

import (
	"context"
	"sync"

	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/client/repositories/tokens"
	"github.com/bookaapp/booka/internal/common"
	"github.com/bookaapp/booka/internal/logging"
)

// AuthState is an immutable snapshot of the auth container. A non-nil User
// coincides with a non-empty Token, except after a successful registration,
// which yields no session.
type AuthState struct {
	User   *models.User
	Token  string
	Status Status
	Err    string
}

// AuthStore tracks the current identity and session. Mutators are atomic with
// respect to each other; workflows never hold the store lock across network
// calls, so overlapping workflows are last-write-wins.
type AuthStore struct {
	mu    sync.Mutex
	state AuthState

	subs   notifier
	tokens tokens.Repository
	log    logging.Logger
}

// NewAuthStore builds an auth container persisting the session token through
// repo. The container starts empty with status idle.
func NewAuthStore(repo tokens.Repository, log logging.Logger) *AuthStore {
	return &AuthStore{tokens: repo, log: log.With("component", "auth-store")}
}

// Subscribe registers fn to run after every mutation and returns an
// unsubscribe func.
func (s *AuthStore) Subscribe(fn func()) func() {
	return s.subs.subscribe(fn)
}

// Snapshot returns a copy of the current state.
func (s *AuthStore) Snapshot() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// Token returns the current session token, or "" when logged out. Book
// workflows use this read-only access; no other cross-container access exists.
func (s *AuthStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// SetCredentials unconditionally replaces the user and token, sets status
// succeeded, and clears the error. A non-empty token is persisted to the
// secure store; a persistence failure is logged and does not undo the
// in-memory mutation.
func (s *AuthStore) SetCredentials(ctx context.Context, user *models.User, token string) {
	s.mu.Lock()
	if user != nil {
		u := *user
		s.state.User = &u
	} else {
		s.state.User = nil
	}
	s.state.Token = token
	s.state.Status = StatusSucceeded
	s.state.Err = ""
	s.mu.Unlock()

	if token != "" {
		if err := s.tokens.Set(ctx, common.TokenStorageKey, token); err != nil {
			s.log.Warn(ctx, "failed to persist session token", "error", err)
		}
	}

	s.subs.notify()
}

// Logout clears the user, token, and error, resets status to idle, and
// deletes the persisted token.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = AuthState{Status: StatusIdle}
	s.mu.Unlock()

	if err := s.tokens.Delete(ctx, common.TokenStorageKey); err != nil {
		s.log.Warn(ctx, "failed to delete persisted session token", "error", err)
	}

	s.subs.notify()
}

// SetLoading toggles status between loading and idle. Turning loading off is
// a no-op when a workflow already applied a terminal status; a succeeded or
// failed outcome survives the workflow's cleanup step.
func (s *AuthStore) SetLoading(flag bool) {
	s.mu.Lock()
	if flag {
		s.state.Status = StatusLoading
	} else if s.state.Status == StatusLoading {
		s.state.Status = StatusIdle
	}
	s.mu.Unlock()

	s.subs.notify()
}

// SetError records the message and sets status failed. The message is cleared
// only by the next successful mutation, not by the next attempt's start.
func (s *AuthStore) SetError(msg string) {
	s.mu.Lock()
	s.state.Err = msg
	s.state.Status = StatusFailed
	s.mu.Unlock()

	s.subs.notify()
}
