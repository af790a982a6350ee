package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnsupportedDriver indicates a database driver other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or negative
	// timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates a bcrypt cost outside the allowed range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
