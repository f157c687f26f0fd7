package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db: &DB{
			DB:                 db,
			driver:             "pgx",
			builder:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows(account models.Account) *sqlmock.Rows {
	return sqlmock.
		NewRows(accountColumns).
		AddRow(
			account.ID,
			account.Name,
			account.Email,
			account.PasswordHash,
			account.IsVerified,
			account.VerifyOtp,
			account.VerifyOtpExpiresAt,
			account.ResetOtp,
			account.ResetOtpExpiresAt,
			account.CreatedAt,
		)
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	account := models.Account{
		ID:           "account-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "hash",
	}

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			account.ID,
			account.Name,
			account.Email,
			account.PasswordHash,
			false,
			"",
			clearedOtpExpiry,
			"",
			clearedOtpExpiry,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateAccount(ctx, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != account.ID {
		t.Errorf("expected ID %s, got %s", account.ID, created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(context.Background(), models.Account{
		ID:    "account-1",
		Email: "john@example.com",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateAccount_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateAccount(context.Background(), models.Account{ID: "account-1"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrEmailAlreadyExists) {
		t.Error("connection failure must not be reported as a duplicate email")
	}
}

func TestFindAccountByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	stored := models.Account{
		ID:                 "account-1",
		Name:               "John",
		Email:              "john@example.com",
		PasswordHash:       "hash",
		IsVerified:         true,
		VerifyOtpExpiresAt: clearedOtpExpiry,
		ResetOtpExpiresAt:  clearedOtpExpiry,
		CreatedAt:          time.Now().UTC(),
	}

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs("john@example.com").
		WillReturnRows(accountRows(stored))

	found, err := repo.FindAccountByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != stored.ID {
		t.Errorf("expected ID %s, got %s", stored.ID, found.ID)
	}
	if !found.IsVerified {
		t.Error("expected IsVerified to survive the round trip")
	}
}

func TestFindAccountByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAccountByID(context.Background(), "ghost")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Errorf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestSetVerifyOtp_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	expiresAt := time.Now().Add(24 * time.Hour)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("123456", expiresAt, "account-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetVerifyOtp(context.Background(), "account-1", "123456", expiresAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetResetOtp_AccountMissing(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetResetOtp(context.Background(), "ghost", "123456", time.Now())
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Errorf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestConsumeVerifyOtp_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// SET args first (verified flag, cleared code and expiry), then the
	// guard: id, stored code, and the non-empty check.
	mock.ExpectExec("UPDATE accounts").
		WithArgs(true, "", clearedOtpExpiry, "account-1", "123456", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ConsumeVerifyOtp(context.Background(), "account-1", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestConsumeVerifyOtp_AlreadyConsumed(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// zero rows matched: the guard failed because the code was cleared or
	// replaced between read and update
	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConsumeVerifyOtp(context.Background(), "account-1", "123456")
	if !errors.Is(err, ErrOtpAlreadyConsumed) {
		t.Errorf("expected ErrOtpAlreadyConsumed, got %v", err)
	}
}

func TestConsumeResetOtp_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("new-hash", "", clearedOtpExpiry, "account-1", "654321", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ConsumeResetOtp(context.Background(), "account-1", "654321", "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestConsumeResetOtp_AlreadyConsumed(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConsumeResetOtp(context.Background(), "account-1", "654321", "new-hash")
	if !errors.Is(err, ErrOtpAlreadyConsumed) {
		t.Errorf("expected ErrOtpAlreadyConsumed, got %v", err)
	}
}
