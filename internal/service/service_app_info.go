package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version. When the version is unset or left
// at [config.DefaultAppVersion], the version baked into the binary at build
// time takes its place if there is one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" || version == config.DefaultAppVersion {
		version = config.DefaultAppVersion
		if built := build.BuildVersion(); built != "" {
			version = built
		}
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
