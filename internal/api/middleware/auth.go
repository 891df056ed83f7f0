package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// Auth is the authoritative tier: it resolves the session cookie against
// the store and rejects the request when the session is dead. The edge
// guard only ever checks cookie presence; this middleware is what actually
// decides.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ReadSessionToken(r)

			user, err := authService.Validate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrNotAuthenticated) {
					http.Error(w, "Not authenticated", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the session when a cookie is present but never
// rejects the request. Anonymous visitors pass through with no user in
// context.
func OptionalAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ReadSessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.Validate(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must be mounted inside Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil || user.Role != domain.RoleAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser returns the authenticated user from the request context, or nil
// when the request did not pass through Auth.
func GetUser(ctx context.Context) *domain.PublicUser {
	user, _ := ctx.Value(userKey).(*domain.PublicUser)
	return user
}
