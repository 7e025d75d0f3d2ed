package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
)

// Authenticator resolves a bearer token into a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Session, error)
}

// NewRequireSession returns a middleware that rejects requests without a valid
// "Authorization: Bearer <token>" header. The resolved session is placed in
// the request context for auth.FromContext. Failures are passed to onError,
// which writes the response.
func NewRequireSession(a Authenticator, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				onError(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
				return
			}
			sess, err := a.Authenticate(r.Context(), token)
			if err != nil {
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
