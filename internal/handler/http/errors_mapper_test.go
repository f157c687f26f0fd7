package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrInvalidDataProvided, "Missing details"},
		{service.ErrWrongPassword, "Invalid password"},
		{service.ErrAccountAlreadyVerified, "Account is already verified"},
		{service.ErrInvalidOtp, "Invalid OTP"},
		{service.ErrOtpExpired, "OTP expired"},
		{service.ErrOtpDeliveryFailed, "Failed to send OTP email"},
		{store.ErrEmailAlreadyExists, "Account already exists"},
		{store.ErrNoAccountWasFound, "Account not found"},
		{errors.New("pq: connection refused"), messageUnexpected},
		{nil, messageUnexpected},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, messageFromError(tt.err))
	}
}

func TestMessageFromError_WrappedErrors(t *testing.T) {
	// service-layer errors arrive wrapped with call-site context
	wrapped := fmt.Errorf("account search by email failed: %w", store.ErrNoAccountWasFound)
	assert.Equal(t, "Account not found", messageFromError(wrapped))

	doubly := fmt.Errorf("outer: %w", fmt.Errorf("%w: smtp down", service.ErrOtpDeliveryFailed))
	assert.Equal(t, "Failed to send OTP email", messageFromError(doubly))
}
