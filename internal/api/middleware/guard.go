package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// Route classes for the edge guard.
var (
	protectedRoutes = []string{"/admin", "/account", "/quotes"}
	authRoutes      = []string{"/login", "/register", "/forgot-password"}
)

const (
	loginPath            = "/login"
	defaultAuthedLanding = "/account/dashboard"
)

// Guard is the cheap pre-render tier: it inspects cookie PRESENCE only,
// never validity, because it runs before any store access. A forged or
// expired cookie passes here and is rejected by the Auth middleware on
// the API tier. Collapsing the two tiers would either cost a store
// round-trip on every page request or leave protected pages ungated.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Static assets and API routes are exempt.
		if strings.HasPrefix(path, "/api") ||
			strings.HasPrefix(path, "/static") ||
			strings.Contains(path, ".") {
			next.ServeHTTP(w, r)
			return
		}

		hasSession := HasSessionCookie(r)

		if matchesRoute(path, protectedRoutes) && !hasSession {
			redirect := loginPath + "?returnUrl=" + url.QueryEscape(path)
			http.Redirect(w, r, redirect, http.StatusFound)
			return
		}

		if hasSession && matchesRoute(path, authRoutes) {
			http.Redirect(w, r, defaultAuthedLanding, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func matchesRoute(path string, routes []string) bool {
	for _, route := range routes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}
