package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/middleware"
)

type authFunc func(ctx context.Context, token string) (auth.Session, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (auth.Session, error) {
	return f(ctx, token)
}

var _ middleware.Authenticator = authFunc(nil)

func unauthorized(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUnauthorized) {
		status = http.StatusUnauthorized
	}
	w.WriteHeader(status)
}

func TestRequireSession_ValidToken(t *testing.T) {
	user := uuid.New()
	mw := middleware.NewRequireSession(authFunc(func(_ context.Context, token string) (auth.Session, error) {
		if token != "good" {
			return auth.Session{}, domain.ErrUnauthorized
		}
		return auth.Session{ID: "sid", UserID: user}, nil
	}), unauthorized)

	var got auth.Session
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, got.UserID)
}

func TestRequireSession_Rejects(t *testing.T) {
	mw := middleware.NewRequireSession(authFunc(func(_ context.Context, _ string) (auth.Session, error) {
		return auth.Session{}, domain.ErrUnauthorized
	}), unauthorized)
	h := mw(okHandler)

	for name, header := range map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc",
		"empty token":  "Bearer ",
		"bad token":    "Bearer forged",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
