package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps the shared *sql.DB pool together with the driver-specific pieces
// the repositories need: a squirrel builder with the right placeholder
// format and a constraint-error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection pool for driver.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify reports which constraint, if any, err violated.
func (db *DB) classify(err error) ConstraintViolation {
	return db.errorClassificator.Classify(err)
}
