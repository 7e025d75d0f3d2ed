package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/handler"
)

const testToken = "test-token"

// testUser is the user behind testToken.
var testUser = uuid.MustParse("6f1c2b1e-0d6a-4c55-9d4e-1f1d7a4b2c3d")

// mockAuthServicer accepts testToken and delegates the rest to function fields.
type mockAuthServicer struct {
	signUp  func(ctx context.Context, email, password, confirm string) (auth.Session, error)
	signIn  func(ctx context.Context, email, password string) (auth.Session, error)
	signOut func(ctx context.Context, sess auth.Session) error
}

func (m *mockAuthServicer) SignUp(ctx context.Context, email, password, confirm string) (auth.Session, error) {
	return m.signUp(ctx, email, password, confirm)
}
func (m *mockAuthServicer) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	return m.signIn(ctx, email, password)
}
func (m *mockAuthServicer) SignOut(ctx context.Context, sess auth.Session) error {
	return m.signOut(ctx, sess)
}
func (m *mockAuthServicer) Authenticate(_ context.Context, token string) (auth.Session, error) {
	if token != testToken {
		return auth.Session{}, domain.ErrUnauthorized
	}
	return auth.Session{ID: "sid", UserID: testUser, Email: "ana@example.com", Token: token}, nil
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// newHTTPHandler wires a Server with the given services through the real
// router, the same way main.go does. Auth defaults to mockAuthServicer.
func newHTTPHandler(svc handler.Services) http.Handler {
	if svc.Auth == nil {
		svc.Auth = &mockAuthServicer{}
	}
	return handler.NewServer(svc, nil).Routes()
}

// do sends an authenticated request with an optional JSON body.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, jsonBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func ptr[T any](v T) *T { return &v }
