// Package auth owns the signed-in session: the context object every
// authenticated request carries, the signed token that represents it on the
// wire, and the Redis store that makes sign-out revoke it.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is created at sign-in and destroyed at sign-out. It is passed
// explicitly: the authentication middleware places it in the request context
// and handlers read it with FromContext.
type Session struct {
	ID        string    `json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
