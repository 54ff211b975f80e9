// Package auth resolves the owning user from a bearer token.
// A missing or invalid token is not an error: the register works
// unauthenticated, the sale just has no owner.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey struct{}

// Middleware parses the Authorization header and, when a valid token is
// present, stores the user id in the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := parseToken(r.Header.Get("Authorization"), secret); id != nil {
				r = r.WithContext(WithUserID(r.Context(), id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseToken(header, secret string) *uuid.UUID {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || secret == "" {
		return nil
	}

	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	return &id
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, id *uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// UserID returns the authenticated user id, or nil when the request is
// unauthenticated.
func UserID(ctx context.Context) *uuid.UUID {
	id, _ := ctx.Value(contextKey{}).(*uuid.UUID)
	return id
}
