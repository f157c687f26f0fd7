// Package http implements the HTTP transport layer of the service.
// It provides middleware, route handlers, and the uniform response
// envelope of the REST API. Session checking, logging, tracing, and
// CORS concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// authFailureMessage is the envelope message for every guard rejection.
// The client treats it as a signal to drop local session state and show
// the login form, so the guard never reveals which check failed.
const authFailureMessage = "Not authorized, login again"

// auth is an HTTP middleware that enforces session authentication.
//
// It resolves the signed session token via [sessionTokenFromRequest],
// validates it through [service.TokenService.ParseToken], and — on
// success — stores the authenticated account's ID in the request context
// under [utils.AccountIDCtxKey] before delegating to the next handler.
//
// Rejections keep the uniform envelope contract: the response is
// HTTP 200 with {"success": false, "message": authFailureMessage},
// regardless of whether the token was missing, malformed, expired, or
// forged. The precise cause is only logged via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			writeFailure(w, authFailureMessage)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			writeFailure(w, authFailureMessage)
			return
		}

		// Store the authenticated account's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest resolves the raw session token from the request.
//
// The cookie set at login is the primary carrier; the "Authorization"
// header is accepted as a fallback for non-browser clients:
//
//	Cookie: token=<token>
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrNoSessionToken] — if neither carrier is present.
//   - [ErrInvalidAuthorizationHeader] — if the header cannot be split into
//     a scheme and a token.
//   - [ErrEmptyToken] — if the carrier exists but the token value is empty.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
