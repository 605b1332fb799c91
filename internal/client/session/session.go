// Package session owns the client-side session lifecycle. It is the only
// component that creates or refreshes stored credentials; the HTTP
// transport's 401 purge is the single, delete-only exception.
//
// The session has two states: unauthenticated (no readable token) and
// authenticated. IsAuthenticated is a purely local check, so a token the
// backend has revoked still reads as valid until the next request fails
// with 401 and the transport clears it.
package session

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tjsl-project/tjslctl/internal/client/credentials"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/logging"
)

// API is the slice of the HTTP client the session needs.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, in, out any) error
}

type Session struct {
	api   API
	store credentials.Store
	log   logging.Logger
}

func New(api API, store credentials.Store, log logging.Logger) *Session {
	return &Session{api: api, store: store, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and, on success, persists the
// returned token and profile snapshot. A failed login never mutates the
// store; transport-level failures keep their specific messages
// (api.ErrUnreachable, api.ErrBadResponse).
func (s *Session) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	var res models.LoginResult
	if err := s.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.store.Set(ctx, res.Token, &res.User); err != nil {
		return nil, fmt.Errorf("persist credentials: %w", err)
	}

	s.log.Info(ctx, "logged in", "email", res.User.Email)
	return &res.User, nil
}

// Logout notifies the backend on a best-effort basis, then unconditionally
// clears the local store. A failed backend notification is logged, never
// surfaced: local session termination must always succeed.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.Warn(ctx, "logout notification failed", "err", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// CurrentUser fetches the live profile from the backend and overwrites only
// the stored snapshot. The token is not touched.
func (s *Session) CurrentUser(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := s.api.Get(ctx, "/auth/me", nil, &p); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	if err := s.store.SetProfile(ctx, &p); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}
	return &p, nil
}

// RefreshToken obtains a new token using the still-valid current one and
// overwrites only the stored token. The profile snapshot is not touched.
func (s *Session) RefreshToken(ctx context.Context) error {
	var res models.TokenResult
	if err := s.api.Post(ctx, "/auth/refresh", nil, &res); err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}

	if err := s.store.SetToken(ctx, res.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-expired token is currently
// readable. It never calls the backend.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.store.Token(ctx)
	return err == nil && token != ""
}

// StoredProfile returns the local snapshot without a network round trip;
// nil when absent or expired. The snapshot may be stale.
func (s *Session) StoredProfile(ctx context.Context) (*models.Profile, error) {
	return s.store.Profile(ctx)
}
