package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID. Timestamps are set here rather than by column defaults
// so both drivers return identical values.
//
// Error handling:
//   - unique violation on email_address → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := createUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email address matches exactly.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email_address": email})
}

// FindUserByID retrieves the user with the given primary key.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&found.ID, &found.FirstName, &found.LastName, &found.EmailAddress, &found.Password, &found.CreatedAt, &found.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
