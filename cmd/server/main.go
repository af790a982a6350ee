package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/handler"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/server"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

const role = "course-catalog-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("invalid log level")
	}
	log := logger.NewLogger(role, logger.WithLevel(level))

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, build, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

// printBuildInfo prints the linker-injected build metadata. Empty values are
// shown as N/A but are passed on unchanged.
func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(build.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(build.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(build.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
