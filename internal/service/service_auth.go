package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It verifies Basic Authentication credentials against bcrypt hashes stored
// by the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate resolves email to a user and checks password.
//
// Returns the stored user or:
//   - ErrUserNotFound if no user has exactly this email address.
//   - ErrAuthenticationFailed if the password does not match the stored hash.
//   - a wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.Password, password); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return user, nil
}
