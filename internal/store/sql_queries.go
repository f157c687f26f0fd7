// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/Masterminds/squirrel"
)

// accountColumns is the canonical column order used by every SELECT and
// scanned by scanAccount.
var accountColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"is_verified",
	"verify_otp",
	"verify_otp_expires_at",
	"reset_otp",
	"reset_otp_expires_at",
	"created_at",
}

// clearedOtpExpiry is the value stored in an expiry column once its
// one-time code has been consumed or was never issued. The columns are
// NOT NULL, so the epoch stands in for "absent".
var clearedOtpExpiry = time.Unix(0, 0).UTC()

func (db *DB) buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return db.builder.
		Insert(account.TableName()).
		Columns(accountColumns...).
		Values(
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
		).
		ToSql()
}

func (db *DB) buildSelectAccountQuery(column string, value string) (string, []any, error) {
	return db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(squirrel.Eq{column: value}).
		ToSql()
}

func (db *DB) buildSetOtpQuery(otpColumn, expiryColumn, id, code string, expiresAt time.Time) (string, []any, error) {
	return db.builder.
		Update(models.Account{}.TableName()).
		Set(otpColumn, code).
		Set(expiryColumn, expiresAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildConsumeVerifyOtpQuery flips the verified flag and clears the
// verification code in one statement. The WHERE clause re-checks the stored
// code so that two concurrent consumers cannot both succeed.
func (db *DB) buildConsumeVerifyOtpQuery(id, code string) (string, []any, error) {
	return db.builder.
		Update(models.Account{}.TableName()).
		Set("is_verified", true).
		Set("verify_otp", "").
		Set("verify_otp_expires_at", clearedOtpExpiry).
		Where(squirrel.Eq{"id": id, "verify_otp": code}).
		Where(squirrel.NotEq{"verify_otp": ""}).
		ToSql()
}

// buildConsumeResetOtpQuery replaces the password hash and clears the reset
// code in one statement, guarded the same way as the verify consume.
func (db *DB) buildConsumeResetOtpQuery(id, code, newPasswordHash string) (string, []any, error) {
	return db.builder.
		Update(models.Account{}.TableName()).
		Set("password_hash", newPasswordHash).
		Set("reset_otp", "").
		Set("reset_otp_expires_at", clearedOtpExpiry).
		Where(squirrel.Eq{"id": id, "reset_otp": code}).
		Where(squirrel.NotEq{"reset_otp": ""}).
		ToSql()
}
