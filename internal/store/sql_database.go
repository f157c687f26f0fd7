package store

import (
	"database/sql"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps a sql.DB connection with the pieces repository code needs:
// a squirrel statement builder configured with the backend's placeholder
// format, an error classificator, and a logger.
type DB struct {
	*sql.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
