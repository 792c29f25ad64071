// Package services contains the asynchronous workflows of the Booka client.
// A workflow validates its input, flips the container to loading, performs
// network I/O, applies exactly one terminal mutation (success or failure),
// always restores the loading flag, and returns the error to the caller so
// the UI can react to it.
package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/bookaapp/booka/internal/client/api"
	"github.com/bookaapp/booka/internal/client/repositories/tokens"
	"github.com/bookaapp/booka/internal/client/store"
	"github.com/bookaapp/booka/internal/common"
	"github.com/bookaapp/booka/internal/logging"
)

// AuthService exposes the registration and login workflows over the auth
// container.
type AuthService struct {
	api    api.Client
	store  *store.AuthStore
	tokens tokens.Repository
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// auth container, and token store.
func NewAuthService(client api.Client, authStore *store.AuthStore, repo tokens.Repository, log logging.Logger) *AuthService {
	return &AuthService{
		api:    client,
		store:  authStore,
		tokens: repo,
		log:    log.With("component", "auth-service"),
	}
}

// Register creates a new account. All three fields are required; a missing
// one rejects with ValidationError before any network call. The server issues
// no session on success, so the workflow records succeeded credentials with a
// nil user and no token; logging in is a separate step.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := s.register(ctx, name, email, password); err != nil {
		s.log.Error(ctx, "registration failed", "error", err)
		s.store.SetError(common.ErrorMessage(err))
		return err
	}
	return nil
}

func (s *AuthService) register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return common.NewValidationError("Name, email, and password are required")
	}

	if err := s.api.Register(ctx, name, email, password); err != nil {
		return err
	}

	s.store.SetCredentials(ctx, nil, "")
	return nil
}

// Login authenticates with email/password and then fetches the profile for
// the obtained token. The two calls are strictly ordered; the profile fetch
// never starts before authentication resolves. On success both user and token
// are applied in one mutation.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := s.login(ctx, email, password); err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		s.store.SetError(common.ErrorMessage(err))
		return err
	}
	return nil
}

func (s *AuthService) login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return common.NewValidationError("Email and password are required")
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		return err
	}

	s.store.SetCredentials(ctx, &user, token)
	return nil
}

// Logout clears the session, in memory and in the secure store.
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

// Restore re-establishes a session from a previously persisted token. With no
// persisted token it is a silent no-op. A token the server no longer accepts
// is discarded; any other failure is returned and the token is kept for a
// later retry.
func (s *AuthService) Restore(ctx context.Context) error {
	token, err := s.tokens.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		var se *common.ServerError
		if errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized {
			s.log.Info(ctx, "persisted session token rejected, discarding")
			if derr := s.tokens.Delete(ctx, common.TokenStorageKey); derr != nil {
				s.log.Warn(ctx, "failed to delete stale session token", "error", derr)
			}
			return nil
		}
		return err
	}

	s.log.Info(ctx, "session restored", "user", user.Email)
	s.store.SetCredentials(ctx, &user, token)
	return nil
}
