// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("APP_LOG_LEVEL", "info")
	t.Setenv("APP_PASSWORD_HASH_COST", "12")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:catalog.db")
	t.Setenv("STORAGE_DB_MAX_OPEN_CONNS", "3")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:catalog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)
}

func TestParseEnv_NothingSet(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.PasswordHashCost)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("APP_PASSWORD_HASH_COST", "ten")

	require.Error(t, parseEnv(&StructuredConfig{}))
}
