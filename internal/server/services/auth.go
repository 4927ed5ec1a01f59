// Package services contains the business logic of the catalog: registration
// and login, the moderation workflow, the read-side query operations, and
// admin management of users, categories and images.
package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"artcatalog/internal/common"
	"artcatalog/internal/server/auth"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repositories/users"
	"artcatalog/internal/server/sessions"
)

// AuthService handles credential verification and session issuance. The
// session store is an explicit dependency, never ambient global state.
type AuthService struct {
	users    users.Repository
	sessions sessions.Store
}

func NewAuthService(u users.Repository, s sessions.Store) *AuthService {
	return &AuthService{users: u, sessions: s}
}

// RegisterParams is the self-registration input. Role is not accepted from
// the caller: self-registered accounts are always general.
type RegisterParams struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input (aggregating every violation), creates the
// user with a hashed password, and immediately issues a session for it.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, string, error) {
	username := strings.TrimSpace(p.Username)
	email := strings.TrimSpace(p.Email)

	ve := &common.ValidationError{}
	if username == "" {
		ve.Add("username is required")
	}
	if email == "" || !validEmail(email) {
		ve.Add("valid email is required")
	}
	if len(p.Password) < 6 {
		ve.Add("password must be at least 6 characters")
	}
	if p.Password != p.ConfirmPassword {
		ve.Add("passwords do not match")
	}
	if !ve.Empty() {
		return nil, "", ve
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, users.CreateParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleGeneral,
		Status:       models.UserStatusActive,
	})
	if err != nil {
		return nil, "", err
	}

	// Auto-login after registration.
	token := s.newSession(user)
	return user, token, nil
}

// Login verifies the password for a user looked up by username or email and
// issues a session. Suspended accounts fail with ErrAccountInactive even
// when the password is correct.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	user, err := s.users.VerifyCredentials(ctx, strings.TrimSpace(login), password)
	if err != nil {
		return nil, "", err
	}
	if user.Status != models.UserStatusActive {
		return nil, "", common.ErrAccountInactive
	}

	token := s.newSession(user)
	return user, token, nil
}

// Logout invalidates the session token.
func (s *AuthService) Logout(token string) {
	s.sessions.Destroy(token)
}

// CurrentUser resolves the session token to its user. A session pointing at
// a user that no longer resolves is destroyed on the spot.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return nil, common.ErrUnauthenticated
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		s.sessions.Destroy(token)
		return nil, err
	}
	return user, nil
}

// RequireAuth resolves the token or fails with ErrUnauthenticated.
func (s *AuthService) RequireAuth(token string) (sessions.Session, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return sessions.Session{}, common.ErrUnauthenticated
	}
	return session, nil
}

// RequireAdmin resolves the token and checks the admin role, failing with
// ErrUnauthenticated or ErrForbidden respectively.
func (s *AuthService) RequireAdmin(token string) (sessions.Session, error) {
	session, err := s.RequireAuth(token)
	if err != nil {
		return sessions.Session{}, err
	}
	if session.Role != models.RoleAdmin {
		return sessions.Session{}, common.ErrForbidden
	}
	return session, nil
}

func (s *AuthService) newSession(user *models.User) string {
	return s.sessions.Create(sessions.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
