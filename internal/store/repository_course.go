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

// courseRepository is the SQL-backed implementation of [CourseRepository].
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner, c *models.Course) error {
	return s.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &c.EstimatedTime, &c.MaterialsNeeded, &c.CreatedAt, &c.UpdatedAt)
}

// CreateCourse persists a new course and returns it with the server-assigned ID.
//
// Error handling:
//   - unique violation on title → [ErrTitleAlreadyExists].
//   - foreign key violation on user_id → [ErrCourseOwnerNotFound].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	course.CreatedAt, course.UpdatedAt = now, now

	query, args, err := createCourseQuery(r.db.builder, course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&course.ID); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.Course{}, ErrTitleAlreadyExists
		case ForeignKeyViolation:
			return models.Course{}, ErrCourseOwnerNotFound
		default:
			return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return course, nil
}

// FindCourseByID retrieves the course with the given id.
func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	return r.findCourse(ctx, "*courseRepository.FindCourseByID", sq.Eq{"id": id})
}

// FindCourseByTitle retrieves the course whose title matches exactly.
func (r *courseRepository) FindCourseByTitle(ctx context.Context, title string) (models.Course, error) {
	return r.findCourse(ctx, "*courseRepository.FindCourseByTitle", sq.Eq{"title": title})
}

func (r *courseRepository) findCourse(ctx context.Context, funcName string, where sq.Eq) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := findCourseQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Course
	err = scanCourse(r.db.QueryRowContext(ctx, query, args...), &found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Course{}, ErrCourseNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error scanning course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListCourses returns every course ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := listCoursesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var c models.Course
		if err = scanCourse(rows, &c); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// UpdateCourse overwrites title, description, estimated_time and
// materials_needed of course.ID and bumps updated_at.
//
// Error handling:
//   - no affected rows → [ErrCourseNotFound].
//   - unique violation on title → [ErrTitleAlreadyExists].
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	query, args, err := updateCourseQuery(r.db.builder, course, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error updating course")
		if r.db.classify(err) == UniqueViolation {
			return ErrTitleAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkAffected(ctx, result, "*courseRepository.UpdateCourse")
}

// DeleteCourse removes the course with the given id.
// Returns [ErrCourseNotFound] when nothing was deleted.
func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteCourseQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error deleting course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkAffected(ctx, result, "*courseRepository.DeleteCourse")
}

func (r *courseRepository) checkAffected(ctx context.Context, result sql.Result, funcName string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	return nil
}
