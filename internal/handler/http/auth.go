package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// Request bodies of the authentication endpoints. Field names follow the
// JSON contract consumed by the SPA.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyAccountRequest struct {
	Otp string `json:"otp"`
}

type sendResetOtpRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// writeSuccess and writeFailure emit the uniform envelope. Domain outcomes
// are always HTTP 200; only the envelope reports success or failure.

func writeSuccess(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Response{Success: true, Message: message}, http.StatusOK)
}

func writeFailure(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Missing details")
		return
	}

	registeredAccount, err := h.services.AccountService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("registration failed")
		writeFailure(w, messageFromError(err))
		return
	}

	token, err := h.services.TokenService.CreateToken(ctx, registeredAccount)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, messageUnexpected)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	writeSuccess(w, "Registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Missing details")
		return
	}

	foundAccount, err := h.services.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login failed")

		// An unknown email reads "Invalid email" here, not the generic
		// not-found message: the login form reports which field to fix.
		if errors.Is(err, store.ErrNoAccountWasFound) {
			writeFailure(w, "Invalid email")
			return
		}

		writeFailure(w, messageFromError(err))
		return
	}

	log.Debug().Str("id", foundAccount.ID).Msg("account successfully logged in")

	token, err := h.services.TokenService.CreateToken(ctx, foundAccount)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, messageUnexpected)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	writeSuccess(w, "")
}

// logout clears the session cookie. Tokens are stateless, so there is no
// server-side session to destroy; the operation succeeds even when no
// session exists.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.clearedSessionCookie())
	writeSuccess(w, "Logged out")
}

func (h *Handler) sendVerifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		writeFailure(w, authFailureMessage)
		return
	}

	account, err := h.services.AccountService.SendVerifyOtp(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("sending verification code failed")
		writeFailure(w, messageFromError(err))
		return
	}

	writeSuccess(w, fmt.Sprintf("Verification OTP sent to %s", account.Email))
}

func (h *Handler) verifyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in request context")
		writeFailure(w, authFailureMessage)
		return
	}

	var req verifyAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Missing details")
		return
	}

	if err := h.services.AccountService.VerifyEmail(ctx, accountID, req.Otp); err != nil {
		log.Err(err).Msg("email verification failed")
		writeFailure(w, messageFromError(err))
		return
	}

	writeSuccess(w, "Email verified successfully")
}

// isAuthenticated is a dedicated session check: reaching it at all means
// the guard accepted the token, so it only echoes success.
func (h *Handler) isAuthenticated(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "")
}

func (h *Handler) sendResetOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req sendResetOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Missing details")
		return
	}

	if _, err := h.services.AccountService.SendResetOtp(ctx, req.Email); err != nil {
		log.Err(err).Msg("sending reset code failed")
		writeFailure(w, messageFromError(err))
		return
	}

	writeSuccess(w, "OTP sent to your email")
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Missing details")
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, req.Email, req.Otp, req.NewPassword); err != nil {
		log.Err(err).Msg("password reset failed")
		writeFailure(w, messageFromError(err))
		return
	}

	writeSuccess(w, "Password has been reset successfully")
}
