package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation, lookup, and one-time-code transitions against
// the "accounts" table of either supported backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns it with the
// server-assigned CreatedAt timestamp.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error",
//     with its retryability classification logged.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.CreatedAt = time.Now().UTC()
	if account.VerifyOtpExpiresAt.IsZero() {
		account.VerifyOtpExpiresAt = clearedOtpExpiry
	}
	if account.ResetOtpExpiresAt.IsZero() {
		account.ResetOtpExpiresAt = clearedOtpExpiry
	}

	query, args, err := r.db.buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*accountRepository.CreateAccount").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing insert")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// FindAccountByID retrieves the account record with the given ID.
//
// Error handling:
//   - empty result set → [ErrNoAccountWasFound].
//   - any other driver-level error → wrapped as a scan error.
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findAccountBy(ctx, "id", id)
}

// FindAccountByEmail retrieves the account registered under the given email.
//
// Error handling mirrors [accountRepository.FindAccountByID].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccountBy(ctx, "email", email)
}

func (r *accountRepository) findAccountBy(ctx context.Context, column, value string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectAccountQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccountBy").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.IsVerified,
		&account.VerifyOtp,
		&account.VerifyOtpExpiresAt,
		&account.ResetOtp,
		&account.ResetOtpExpiresAt,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.findAccountBy").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// SetVerifyOtp stores the outstanding verification code and expiry.
func (r *accountRepository) SetVerifyOtp(ctx context.Context, id, code string, expiresAt time.Time) error {
	return r.setOtp(ctx, "verify_otp", "verify_otp_expires_at", id, code, expiresAt)
}

// SetResetOtp stores the outstanding password-reset code and expiry.
func (r *accountRepository) SetResetOtp(ctx context.Context, id, code string, expiresAt time.Time) error {
	return r.setOtp(ctx, "reset_otp", "reset_otp_expires_at", id, code, expiresAt)
}

func (r *accountRepository) setOtp(ctx context.Context, otpColumn, expiryColumn, id, code string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSetOtpQuery(otpColumn, expiryColumn, id, code, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.setOtp").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.setOtp").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

// ConsumeVerifyOtp performs the one-way verified transition. The update is
// conditional on the stored code still matching, so a code is consumed at
// most once even under concurrent submissions.
func (r *accountRepository) ConsumeVerifyOtp(ctx context.Context, id, code string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildConsumeVerifyOtpQuery(id, code)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ConsumeVerifyOtp").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.consume(ctx, query, args)
}

// ConsumeResetOtp replaces the password hash and clears the reset code,
// guarded the same way as [accountRepository.ConsumeVerifyOtp].
func (r *accountRepository) ConsumeResetOtp(ctx context.Context, id, code, newPasswordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildConsumeResetOtpQuery(id, code, newPasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ConsumeResetOtp").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.consume(ctx, query, args)
}

func (r *accountRepository) consume(ctx context.Context, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.consume").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing conditional update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrOtpAlreadyConsumed
	}

	return nil
}
