package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/service"
)

// memUsers is a tiny in-memory user table keyed by email.
func memUsers() *mockUserRepo {
	users := map[string]domain.User{}
	return &mockUserRepo{
		create: func(_ context.Context, email, hash string) (domain.User, error) {
			if _, ok := users[email]; ok {
				return domain.User{}, domain.ErrConflict
			}
			u := domain.User{ID: uuid.New(), Email: email, PasswordHash: hash}
			users[email] = u
			return u, nil
		},
		getByEmail: func(_ context.Context, email string) (domain.User, error) {
			u, ok := users[email]
			if !ok {
				return domain.User{}, domain.ErrNotFound
			}
			return u, nil
		},
	}
}

func noopProfiles() *mockProfileRepo {
	return &mockProfileRepo{
		create: func(_ context.Context, userID uuid.UUID, email string) (domain.Profile, error) {
			return domain.Profile{UserID: userID, Email: &email}, nil
		},
	}
}

func newAuthService() (*service.AuthService, *memSessions) {
	sessions := newMemSessions()
	svc := service.NewAuthService(memUsers(), noopProfiles(), auth.NewIssuer("test-secret", time.Hour), sessions)
	return svc, sessions
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	cases := map[string][3]string{
		"missing email":  {"", "secret1", "secret1"},
		"short password": {"a@b.c", "abc", "abc"},
		"mismatch":       {"a@b.c", "secret1", "secret2"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, in[0], in[1], in[2])
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "  ANA@example.com ", "secret1", "secret1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_SignIn_RoundTrip(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	sess, err := svc.SignIn(ctx, "Ana@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", sess.Email)

	got, err := svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.ID, got.ID)
}

func TestAuthService_SignIn_BadCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_SignOut_RevokesToken(t *testing.T) {
	svc, sessions := newAuthService()
	ctx := context.Background()
	sess, err := svc.SignUp(ctx, "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)
	require.True(t, sessions.live[sess.ID])

	require.NoError(t, svc.SignOut(ctx, sess))

	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_GarbageToken(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
