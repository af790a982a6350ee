package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintViolation is the result type returned by [ErrorClassificator.Classify].
// It names the integrity constraint a failed statement violated.
type ConstraintViolation int

const (
	// NoViolation is returned for nil errors and for errors that are not
	// integrity constraint violations.
	NoViolation ConstraintViolation = iota

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a REFERENCES constraint failure.
	ForeignKeyViolation

	// NotNullViolation indicates a NOT NULL constraint failure.
	NotNullViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [NoViolation] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ConstraintViolation {
	if err == nil {
		return NoViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NoViolation
}

// ClassifyPgError maps a *pgconn.PgError onto a [ConstraintViolation] based on
// its class 23 error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ConstraintViolation {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation: // 23503
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation: // 23502
		return NotNullViolation
	}

	return NoViolation
}
