package middleware

import "net/http"

// SessionCookieName carries the opaque session token.
const SessionCookieName = "motico_session"

// ReadSessionToken returns the raw session token from the request cookie,
// or "" when absent.
func ReadSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// HasSessionCookie reports cookie presence only; it says nothing about
// session validity.
func HasSessionCookie(r *http.Request) bool {
	return ReadSessionToken(r) != ""
}

// SetSessionCookie attaches the session cookie with the auth cookie
// policy: HttpOnly, SameSite=Lax, Secure outside development, Path=/ and
// a max-age mirroring the session lifetime.
func SetSessionCookie(w http.ResponseWriter, token string, maxAgeSeconds int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
