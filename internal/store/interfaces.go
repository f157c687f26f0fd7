package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AccountRepository is the persistence contract for account records.
// Implementations must map driver-level failures onto the sentinel errors
// declared in this package so that callers can match them with errors.Is.
type AccountRepository interface {
	// CreateAccount persists a new account record. A duplicate email must
	// surface as ErrEmailAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByID returns the account with the given ID or
	// ErrNoAccountWasFound.
	FindAccountByID(ctx context.Context, id string) (models.Account, error)

	// FindAccountByEmail returns the account registered under email or
	// ErrNoAccountWasFound.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// SetVerifyOtp stores an outstanding email-verification code and its
	// expiry on the account.
	SetVerifyOtp(ctx context.Context, id, code string, expiresAt time.Time) error

	// SetResetOtp stores an outstanding password-reset code and its expiry
	// on the account.
	SetResetOtp(ctx context.Context, id, code string, expiresAt time.Time) error

	// ConsumeVerifyOtp marks the account verified and clears the
	// verification code in a single conditional update guarded on the
	// stored code. Returns ErrOtpAlreadyConsumed when no row matched,
	// i.e. the code was cleared or replaced since it was read.
	ConsumeVerifyOtp(ctx context.Context, id, code string) error

	// ConsumeResetOtp replaces the password hash and clears the reset code
	// in a single conditional update guarded on the stored code. Returns
	// ErrOtpAlreadyConsumed when no row matched.
	ConsumeResetOtp(ctx context.Context, id, code, newPasswordHash string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
