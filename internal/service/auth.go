package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

const minPasswordLen = 6

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (auth.Session, error)
	Parse(token string) (auth.Session, error)
}

// SessionStore tracks which sessions are still signed in.
type SessionStore interface {
	Save(ctx context.Context, s auth.Session) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// AuthService is the sign-up / sign-in boundary.
type AuthService struct {
	users    repo.UserRepo
	profiles repo.ProfileRepo
	issuer   TokenIssuer
	sessions SessionStore
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, profiles repo.ProfileRepo, issuer TokenIssuer, sessions SessionStore) *AuthService {
	return &AuthService{users: users, profiles: profiles, issuer: issuer, sessions: sessions}
}

// SignUp registers a new account with an empty profile and signs it in.
func (s *AuthService) SignUp(ctx context.Context, email, password, confirm string) (auth.Session, error) {
	email = normalizeEmail(email)
	switch {
	case email == "" || password == "":
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", invalid("email and password are required"))
	case len(password) < minPasswordLen:
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", invalid("password must be at least %d characters", minPasswordLen))
	case password != confirm:
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", invalid("passwords do not match"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: hash: %w", err)
	}
	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w: email already registered", domain.ErrConflict)
		}
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}
	if _, err := s.profiles.Create(ctx, user.ID, user.Email); err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}
	return s.start(ctx, user)
}

// SignIn checks credentials and starts a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w: invalid email or password", domain.ErrUnauthorized)
		}
		return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w: invalid email or password", domain.ErrUnauthorized)
	}
	return s.start(ctx, user)
}

// SignOut revokes sess. Its token is rejected from then on.
func (s *AuthService) SignOut(ctx context.Context, sess auth.Session) error {
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("service.AuthService.SignOut: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token into its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (auth.Session, error) {
	sess, err := s.issuer.Parse(token)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	live, err := s.sessions.Exists(ctx, sess.ID)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	if !live {
		return auth.Session{}, fmt.Errorf("service.AuthService.Authenticate: %w: session revoked", domain.ErrUnauthorized)
	}
	return sess, nil
}

func (s *AuthService) start(ctx context.Context, user domain.User) (auth.Session, error) {
	sess, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService: %w", err)
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService: %w", err)
	}
	return sess, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
