package middleware

import (
	"net/http"
	"strings"

	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/identity"
)

// TokenAuthenticator is middleware that validates session tokens
type TokenAuthenticator struct {
	Issuer *auth.TokenIssuer
}

// NewTokenAuthenticator creates a new session token middleware
func NewTokenAuthenticator(issuer *auth.TokenIssuer) *TokenAuthenticator {
	return &TokenAuthenticator{Issuer: issuer}
}

// Middleware returns an HTTP middleware that validates session tokens
// carried as "Authorization: Bearer <token>"
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		id, err := t.Issuer.Verify(tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token"))
			return
		}

		if id.Expired() {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Session token expired"))
			return
		}

		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}
