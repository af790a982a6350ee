package service

import (
	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CourseService  CourseService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. User and course services are
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		UserService:    NewUserValidationService(validator).Wrap(NewUserService(storages.UserRepository, cfg, logger)),
		CourseService:  NewCourseValidationService(validator).Wrap(NewCourseService(storages.CourseRepository, logger)),
		AppInfoService: NewAppInfoService(cfg, build, logger),
	}, nil
}
