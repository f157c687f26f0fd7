package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"golang.org/x/crypto/bcrypt"
)

// accountService is the concrete implementation of AccountService.
// It drives the account lifecycle state machine using an AccountRepository
// for persistence, bcrypt for password hashing, and a Mailer for
// one-time-code and welcome notifications.
type accountService struct {
	// accountRepository is the data-access layer used to create, look up,
	// and mutate accounts.
	accountRepository store.AccountRepository

	// mailer delivers the welcome message and one-time codes.
	mailer Mailer

	// ids generates account identifiers at registration time.
	ids *utils.UUIDGenerator

	// verifyOtpTTL is the lifetime of an email-verification code.
	verifyOtpTTL time.Duration

	// resetOtpTTL is the lifetime of a password-reset code.
	resetOtpTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository and mailer, with one-time-code lifetimes taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		mailer:            mailer,
		ids:               utils.NewUUIDGenerator(),
		verifyOtpTTL:      cfg.VerifyOtpTTL,
		resetOtpTTL:       cfg.ResetOtpTTL,
		logger:            logger,
	}
}

// Register creates a new unverified account.
//
// It validates that name, email, and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the AccountRepository.
// After the account exists, a welcome mail is attempted; its failure is
// logged and swallowed — the registration has already succeeded and the
// account must remain usable.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. duplicate
//     email — see store.ErrEmailAlreadyExists).
func (a *accountService) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	account := models.Account{
		ID:           a.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	registeredAccount, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	// Welcome mail is best-effort only. The account already exists; a mail
	// outage must not undo a successful registration.
	welcomeBody := fmt.Sprintf("Welcome! Your account has been created with email id: %s", registeredAccount.Email)
	if err := a.mailer.Send(ctx, registeredAccount.Email, "Welcome", welcomeBody); err != nil {
		log.Err(err).Str("email", registeredAccount.Email).Msg("welcome mail failed, registration kept")
	}

	return registeredAccount, nil
}

// Login authenticates an existing account.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and compares the stored bcrypt hash with the supplied
// password. No account state is mutated.
//
// Returns the authenticated account or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. unknown email —
//     see store.ErrNoAccountWasFound).
//   - ErrWrongPassword if the hash comparison fails.
func (a *accountService) Login(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	foundAccount, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundAccount.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Str("id", foundAccount.ID).
			Str("email", foundAccount.Email).
			Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return foundAccount, nil
}

// SendVerifyOtp issues a fresh email-verification code.
//
// The code is a uniformly random 6-digit decimal string, stored with an
// expiry of now plus the configured verification TTL, then delivered by
// mail. A delivery failure fails the whole operation — the code was
// persisted but the caller must learn the user never received it. This is
// the deliberate opposite of Register's swallowed welcome mail.
//
// Returns the account the code was sent to or:
//   - A wrapped storage error if the account cannot be resolved.
//   - ErrAccountAlreadyVerified if the account is already verified.
//   - ErrOtpDeliveryFailed if the mail send fails.
func (a *accountService) SendVerifyOtp(ctx context.Context, accountID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Str("id", accountID).Msg("account search by id failed")
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	if account.IsVerified {
		log.Error().Str("id", account.ID).Msg("account is already verified")
		return models.Account{}, ErrAccountAlreadyVerified
	}

	code, err := utils.GenerateOtp()
	if err != nil {
		return models.Account{}, fmt.Errorf("error generating verification code: %w", err)
	}

	expiresAt := time.Now().Add(a.verifyOtpTTL)
	if err := a.accountRepository.SetVerifyOtp(ctx, account.ID, code, expiresAt); err != nil {
		log.Err(err).Str("id", account.ID).Msg("error storing verification code")
		return models.Account{}, fmt.Errorf("error storing verification code: %w", err)
	}

	body := fmt.Sprintf("Your OTP is %s. Verify your account using this OTP.", code)
	if err := a.mailer.Send(ctx, account.Email, "Account Verification OTP", body); err != nil {
		log.Err(err).Str("email", account.Email).Msg("verification code delivery failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrOtpDeliveryFailed, err)
	}

	return account, nil
}

// VerifyEmail consumes an outstanding verification code.
//
// Checks run in a fixed order: input validation, account existence, code
// validity (empty stored code or exact-string mismatch — no normalization),
// then expiry. On success the account flips to verified and the code is
// cleared in one conditional update; if another submission consumed the
// code first, the consume reports ErrInvalidOtp as well.
func (a *accountService) VerifyEmail(ctx context.Context, accountID, otp string) error {
	log := logger.FromContext(ctx)

	if accountID == "" || otp == "" {
		log.Error().Str("id", accountID).Msg("invalid verification data provided")
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Str("id", accountID).Msg("account search by id failed")
		return fmt.Errorf("account search by id failed: %w", err)
	}

	if account.VerifyOtp == "" || account.VerifyOtp != otp {
		log.Error().Str("id", account.ID).Msg("invalid verification code")
		return ErrInvalidOtp
	}

	if !time.Now().Before(account.VerifyOtpExpiresAt) {
		log.Error().Str("id", account.ID).Time("expired_at", account.VerifyOtpExpiresAt).Msg("verification code expired")
		return ErrOtpExpired
	}

	if err := a.accountRepository.ConsumeVerifyOtp(ctx, account.ID, otp); err != nil {
		if errors.Is(err, store.ErrOtpAlreadyConsumed) {
			return ErrInvalidOtp
		}

		log.Err(err).Str("id", account.ID).Msg("error consuming verification code")
		return fmt.Errorf("error consuming verification code: %w", err)
	}

	return nil
}

// SendResetOtp issues a fresh password-reset code for the account
// registered under email.
//
// Mirrors SendVerifyOtp except it is keyed by email (reset is
// pre-authentication) and uses the shorter reset TTL.
func (a *accountService) SendResetOtp(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid reset data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	code, err := utils.GenerateOtp()
	if err != nil {
		return models.Account{}, fmt.Errorf("error generating reset code: %w", err)
	}

	expiresAt := time.Now().Add(a.resetOtpTTL)
	if err := a.accountRepository.SetResetOtp(ctx, account.ID, code, expiresAt); err != nil {
		log.Err(err).Str("id", account.ID).Msg("error storing reset code")
		return models.Account{}, fmt.Errorf("error storing reset code: %w", err)
	}

	body := fmt.Sprintf("Your OTP for resetting your password is %s. Use this OTP to proceed with resetting your password.", code)
	if err := a.mailer.Send(ctx, account.Email, "Password Reset OTP", body); err != nil {
		log.Err(err).Str("email", account.Email).Msg("reset code delivery failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrOtpDeliveryFailed, err)
	}

	return account, nil
}

// ResetPassword consumes an outstanding reset code and replaces the
// account's password hash.
//
// Same check ordering as VerifyEmail: validation, existence, code validity,
// expiry, then the conditional consume that swaps in the new bcrypt hash
// and clears the reset code atomically.
func (a *accountService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || otp == "" || newPassword == "" {
		log.Error().Str("email", email).Msg("invalid reset data provided")
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	if account.ResetOtp == "" || account.ResetOtp != otp {
		log.Error().Str("id", account.ID).Msg("invalid reset code")
		return ErrInvalidOtp
	}

	if !time.Now().Before(account.ResetOtpExpiresAt) {
		log.Error().Str("id", account.ID).Time("expired_at", account.ResetOtpExpiresAt).Msg("reset code expired")
		return ErrOtpExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	if err := a.accountRepository.ConsumeResetOtp(ctx, account.ID, otp, string(hash)); err != nil {
		if errors.Is(err, store.ErrOtpAlreadyConsumed) {
			return ErrInvalidOtp
		}

		log.Err(err).Str("id", account.ID).Msg("error consuming reset code")
		return fmt.Errorf("error consuming reset code: %w", err)
	}

	return nil
}

// AccountData returns the public projection of the account for the
// authenticated user-data endpoint.
func (a *accountService) AccountData(ctx context.Context, accountID string) (models.AccountData, error) {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return models.AccountData{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Str("id", accountID).Msg("account search by id failed")
		return models.AccountData{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account.PublicView(), nil
}
