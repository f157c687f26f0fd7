package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "token"

// sessionCookie builds the session cookie for a freshly issued token.
//
// In production the SPA is served from a different origin, so the cookie is
// Secure with SameSite=None; everywhere else it stays SameSite=Strict
// without the Secure flag.
func (h *Handler) sessionCookie(token string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.app.TokenDuration / time.Second),
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}

	if h.app.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

// clearedSessionCookie builds the expired cookie that instructs the client
// to discard its session token. Attributes must match the issuing cookie
// for browsers to drop it.
func (h *Handler) clearedSessionCookie() *http.Cookie {
	cookie := h.sessionCookie("")
	cookie.MaxAge = -1
	return cookie
}
