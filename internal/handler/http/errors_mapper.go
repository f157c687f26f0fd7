package http

import (
	"errors"

	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// messageUnexpected is the envelope message for any failure without a
// dedicated mapping: store outages, hashing or signing failures, and other
// internal errors the client cannot act on.
const messageUnexpected = "Something went wrong"

// messageMapping pairs a sentinel error with its envelope message. An
// ordered slice, not a map: the first match wins, which keeps wrapped
// errors carrying several sentinels deterministic.
type messageMapping struct {
	target  error
	message string
}

var errorMessageMap = []messageMapping{
	{service.ErrInvalidDataProvided, "Missing details"},
	{service.ErrWrongPassword, "Invalid password"},
	{service.ErrAccountAlreadyVerified, "Account is already verified"},
	{service.ErrInvalidOtp, "Invalid OTP"},
	{service.ErrOtpExpired, "OTP expired"},
	{service.ErrOtpDeliveryFailed, "Failed to send OTP email"},

	{store.ErrEmailAlreadyExists, "Account already exists"},
	{store.ErrNoAccountWasFound, "Account not found"},
}

// messageFromError converts a domain error into the human-readable message
// of the uniform response envelope. Every response stays HTTP 200; the
// envelope alone reports the failure class.
func messageFromError(err error) string {
	for _, m := range errorMessageMap {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return messageUnexpected
}
