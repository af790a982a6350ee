package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	assert.NotNil(t, svc)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion_UsesDefault(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, config.DefaultAppVersion, svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "2026-01-01", "abc123")

	svc := NewAppInfoService(config.App{}, build, logger.Nop())

	assert.Equal(t, "v0.9.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_BuildVersionWinsOverDefault(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "", "")

	svc := NewAppInfoService(config.App{Version: config.DefaultAppVersion}, build, logger.Nop())

	assert.Equal(t, "v0.9.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ConfigWinsOverBuild(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "", "")

	svc := NewAppInfoService(config.App{Version: "1.2.3"}, build, logger.Nop())

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc := NewAppInfoService(config.App{Version: version}, models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
