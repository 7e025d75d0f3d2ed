package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/domain"
)

const defaultTTL = 24 * time.Hour

// claims is the JWT payload. RegisteredClaims.ID carries the session id and
// Subject the user id.
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer using secret. A non-positive ttl falls back to 24h.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is how long issued sessions stay valid.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue creates a new session for the user and signs its token.
func (i *Issuer) Issue(userID uuid.UUID, email string) (Session, error) {
	sid, err := newSessionID()
	if err != nil {
		return Session{}, fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	now := i.now().UTC().Truncate(time.Second)
	s := Session{
		ID:        sid,
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(i.ttl),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})
	s.Token, err = tok.SignedString(i.secret)
	if err != nil {
		return Session{}, fmt.Errorf("auth.Issuer.Issue: sign: %w", err)
	}
	return s, nil
}

// Parse verifies token and rebuilds the session it represents.
// Any malformed, expired, or wrongly signed token yields domain.ErrUnauthorized.
func (i *Issuer) Parse(token string) (Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
		}
		return Session{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || c.ID == "" {
		return Session{}, fmt.Errorf("%w: invalid token subject", domain.ErrUnauthorized)
	}
	s := Session{ID: c.ID, UserID: userID, Email: c.Email, Token: token}
	if c.IssuedAt != nil {
		s.CreatedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
