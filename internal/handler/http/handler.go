package http

import (
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}
