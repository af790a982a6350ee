package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

type userService struct {
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor applied to new passwords.
	hashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// CreateUser registers a new account. The email address is trimmed before
// the uniqueness check and before it is stored.
//
// Returns a [ClientError] wrapping ErrUserAlreadyExists when the email is
// taken, whether detected by the pre-check or by the unique constraint.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.EmailAddress)

	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("func", "*userService.CreateUser").Str("email", email).Msg("user already exists")
		return models.User{}, userAlreadyExistsError()
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, s.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: email,
		Password:     hash,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, userAlreadyExistsError()
	case err != nil:
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.ID).Msg("user created")
	return user, nil
}
