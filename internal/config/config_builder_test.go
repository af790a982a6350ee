package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/catalog"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second"}}, Server: Server{RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, DefaultAppVersion, cfg.App.Version)
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite3", "dsn": "file::memory:"}},
		"app":     map[string]any{"version": "9.9.9"},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path, "-d", "overridden-by-json"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-config", "/does/not/exist.json"}).withJSON()
	require.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverSQLite }},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrUnsupportedDriver},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 32 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
