package models

import "time"

// Account represents a single user account used for authentication.
// It contains identity attributes, the stored password hash and the
// one-time-code fields driving email verification and password reset.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the unique identifier of the account, assigned at creation
	// (UUIDv7) and immutable afterwards.
	ID string `json:"-"`

	// Name is the display name of the account holder.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique address the account is registered under.
	// Uniqueness is enforced by the store.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never plaintext and never empty once the account exists.
	PasswordHash string `json:"-"`

	// IsVerified reports whether the email address has been confirmed
	// via the verification one-time code. Starts false, becomes true
	// exactly once and never reverts.
	IsVerified bool `json:"is_verified"`

	// VerifyOtp is the outstanding email-verification code.
	// Empty when no verification attempt is in flight.
	VerifyOtp string `json:"-"`

	// VerifyOtpExpiresAt is the instant after which VerifyOtp is invalid.
	VerifyOtpExpiresAt time.Time `json:"-"`

	// ResetOtp is the outstanding password-reset code.
	// Independent of the verification code lifecycle.
	ResetOtp string `json:"-"`

	// ResetOtpExpiresAt is the instant after which ResetOtp is invalid.
	ResetOtpExpiresAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
