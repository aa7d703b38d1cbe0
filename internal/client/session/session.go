// Package session holds the client's authentication state: the persisted
// bearer token, the claims decoded from it, and the current user profile.
//
// There is no process-wide current user; a *Session is constructed once on
// startup and handed to the components that need it.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lotterich/cli/internal/client/models"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// Claims are the payload carried in the signed session token. The client
// does not hold the signing secret, so claims are decoded without signature
// verification, the same trust model as the browser client: the backend
// re-validates the token on every request anyway.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the explicit auth-state object passed to pages via DI.
type Session struct {
	store         *Store
	token         string
	user          models.User
	authenticated bool
}

// New builds a logged-out session over the given token store.
func New(store *Store) *Session {
	return &Session{store: store}
}

// Restore loads the persisted token and decodes it. An expired or
// undecodable token counts as logged out and is cleared from disk.
// Restore never fails on bad token content, only on storage errors.
func (s *Session) Restore() error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, ok := decode(token)
	if !ok {
		return s.store.Clear()
	}

	s.token = token
	s.user = claims.user()
	s.authenticated = true
	return nil
}

func decode(token string) (*Claims, bool) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(timeNow()) {
		return nil, false
	}
	return claims, true
}

func (c *Claims) user() models.User {
	return models.User{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Login persists the token and marks the session authenticated. The user
// argument is the profile returned alongside the token; when its role is
// empty the role decoded from the token wins.
func (s *Session) Login(token string, user models.User) error {
	if err := s.store.Save(token); err != nil {
		return err
	}
	if user.Role == "" {
		if claims, ok := decode(token); ok {
			user.Role = claims.Role
		}
	}
	s.token = token
	s.user = user
	s.authenticated = true
	return nil
}

// Logout clears the persisted token and all in-memory state.
func (s *Session) Logout() error {
	s.token = ""
	s.user = models.User{}
	s.authenticated = false
	return s.store.Clear()
}

// Token returns the current bearer token, or "" when logged out.
// It has the right shape to serve as an api.TokenSource.
func (s *Session) Token() string {
	return s.token
}

// User returns the current user snapshot.
func (s *Session) User() models.User {
	return s.user
}

// SetUser replaces the user snapshot after a profile (re)fetch.
func (s *Session) SetUser(u models.User) {
	if u.Role == "" {
		u.Role = s.user.Role
	}
	s.user = u
}

// IsAuthenticated reports whether a live token is held.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// IsAdmin reports whether the current user may manage draw results.
func (s *Session) IsAdmin() bool {
	return s.authenticated && s.user.IsAdmin()
}
