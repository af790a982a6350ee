// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// bcrypt accepts costs in [4, 31].
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the merged [StructuredConfig] can start the server:
// a known driver with a DSN, a listen address and a usable bcrypt cost.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return ErrInvalidAppConfigs
	}

	return nil
}
