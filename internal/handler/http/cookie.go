package http

import "net/http"

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "insight_session"
	// SessionMaxAge is the cookie lifetime in seconds (7 days).
	SessionMaxAge = 7 * 24 * 60 * 60
)

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// clearSessionCookie expires the session cookie with the same attributes it
// was set with, so browsers drop it.
func clearSessionCookie(w http.ResponseWriter) {
	cookie := sessionCookie("")
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}
