// Package middleware carries the administrative token from the request
// into the handler context. Whether the token matches the configured
// secret is the engine's decision; the middleware only enforces its
// presence.
package middleware

import (
	"context"
	"net/http"
)

// tokenParam is the query parameter carrying the administrative token.
const tokenParam = "key"

type contextKey string

const tokenContextKey contextKey = "adminToken"

// MissingTokenResponse is the body returned when no token was supplied.
const MissingTokenResponse = "Enter the secret key"

// AdminToken extracts the administrative token from the request and
// stores it in the context. Requests without a token are rejected
// before reaching the handler.
func AdminToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get(tokenParam)
		if token == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(MissingTokenResponse))
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext returns the administrative token stored by
// AdminToken, or the empty string.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
