package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AccountService is the account lifecycle core: registration, login, the
// one-time-code flows for email verification and password reset, and the
// public account projection.
//
// Every operation validates its inputs first, then resolves the account,
// then checks code validity, then expiry — in that order. The ordering is
// part of the contract because it determines which failure a caller
// observes.
type AccountService interface {
	// Register creates a new unverified account. A welcome notification
	// is attempted but its failure never fails the registration.
	Register(ctx context.Context, name, email, password string) (models.Account, error)

	// Login verifies the credentials and returns the matching account.
	// It performs no account-state mutation.
	Login(ctx context.Context, email, password string) (models.Account, error)

	// SendVerifyOtp issues a fresh email-verification code for the account
	// and delivers it by mail. Unlike Register, a delivery failure fails
	// the whole operation: verification must not "succeed" silently when
	// the user never receives the code. Returns the account the code was
	// sent to.
	SendVerifyOtp(ctx context.Context, accountID string) (models.Account, error)

	// VerifyEmail consumes an outstanding verification code, flipping the
	// account to verified. The transition is one-way; a repeated submission
	// of the same code fails with ErrInvalidOtp because the code is cleared
	// on consumption.
	VerifyEmail(ctx context.Context, accountID, otp string) error

	// SendResetOtp issues a fresh password-reset code for the account
	// registered under email and delivers it by mail. Delivery failure
	// fails the operation, mirroring SendVerifyOtp.
	SendResetOtp(ctx context.Context, email string) (models.Account, error)

	// ResetPassword consumes an outstanding reset code and replaces the
	// account's password hash.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	// AccountData returns the public projection of the account.
	AccountData(ctx context.Context, accountID string) (models.AccountData, error)
}

// TokenService issues and verifies the stateless session tokens carried by
// the session cookie.
type TokenService interface {
	// CreateToken issues a signed session token bound to the account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded
	// token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// Mailer delivers a short plain-text message to an email address.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
