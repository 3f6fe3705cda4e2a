package utils

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie that carries the session token.
// The server never reads a bearer header for session auth; the cookie is the
// only transport.
const SessionCookieName = "token"

// SetSessionCookie attaches the signed session token to the response as an
// HTTP-only, same-site-strict cookie. The Secure flag is set only when the
// server runs in production, and MaxAge matches the token lifetime so the
// cookie and the token expire together.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie removes the session cookie from the client. Logout is
// client-side only: the server holds no session table, so the token itself
// stays cryptographically valid until it expires or the sign key changes.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
