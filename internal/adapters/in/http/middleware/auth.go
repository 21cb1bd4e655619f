// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so wiring code can take
// *middleware.FirebaseAuthClient without importing the firebase package.
type FirebaseAuthClient = fbauth.Client

// context keys use a private type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyUID   = ctxKey{name: "uid"}
	ctxKeyEmail = ctxKey{name: "email"}
)

// OptionalIdentity verifies an Authorization bearer token when one is sent
// and stores uid/email in the request context. Guest checkout is the normal
// case, so a missing or invalid token just passes through anonymous.
func OptionalIdentity(auth *FirebaseAuthClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth == nil {
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if idToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUID, token.UID)
			if raw, ok := token.Claims["email"]; ok {
				if email, ok2 := raw.(string); ok2 && strings.TrimSpace(email) != "" {
					ctx = context.WithValue(ctx, ctxKeyEmail, strings.TrimSpace(email))
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity rejects requests without a verified bearer token. Admin
// routes sit behind it.
func RequireIdentity(auth *FirebaseAuthClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth == nil {
				// No auth client configured (local development); pass through.
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			token, err := auth.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUID, token.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UIDFromContext returns the verified uid, if any.
func UIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(ctxKeyUID).(string)
	return uid, ok && uid != ""
}

// EmailFromContext returns the verified email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKeyEmail).(string)
	return email, ok && email != ""
}
