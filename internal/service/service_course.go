package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

type courseService struct {
	courseRepository store.CourseRepository

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses failed: %w", err)
	}
	return courses, nil
}

// GetCourse returns ErrCourseNotFound unwrapped so callers can tell an
// absent course from a storage failure.
func (s *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrCourseNotFound):
		return models.Course{}, ErrCourseNotFound
	case err != nil:
		return models.Course{}, fmt.Errorf("course search by id failed: %w", err)
	}
	return course, nil
}

// CreateCourse trims the title, rejects duplicates and stores the course
// with req.UserID as owner, defaulting to actor.
func (s *courseService) CreateCourse(ctx context.Context, actor models.User, req models.CourseRequest) (models.Course, error) {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(req.Title)

	_, err := s.courseRepository.FindCourseByTitle(ctx, title)
	switch {
	case err == nil:
		return models.Course{}, titleAlreadyExistsError(title)
	case !errors.Is(err, store.ErrCourseNotFound):
		return models.Course{}, fmt.Errorf("course search by title failed: %w", err)
	}

	ownerID := req.UserID
	if ownerID == 0 {
		ownerID = actor.ID
	}

	course, err := s.courseRepository.CreateCourse(ctx, models.Course{
		UserID:          ownerID,
		Title:           title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	switch {
	case errors.Is(err, store.ErrTitleAlreadyExists):
		return models.Course{}, titleAlreadyExistsError(title)
	case errors.Is(err, store.ErrCourseOwnerNotFound):
		return models.Course{}, ownerNotFoundError(ownerID)
	case err != nil:
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	log.Info().Int64("id", course.ID).Int64("user_id", course.UserID).Msg("course created")
	return course, nil
}

// UpdateCourse replaces the content fields of an owned course. The owner is
// never changed, whatever update.Fields.UserID says.
func (s *courseService) UpdateCourse(ctx context.Context, update models.CourseUpdate) error {
	course, err := s.ownedCourse(ctx, update.ID, update.ActorID, "edit")
	if err != nil {
		return err
	}

	course.Title = strings.TrimSpace(update.Fields.Title)
	course.Description = update.Fields.Description
	course.EstimatedTime = update.Fields.EstimatedTime
	course.MaterialsNeeded = update.Fields.MaterialsNeeded

	err = s.courseRepository.UpdateCourse(ctx, course)
	switch {
	case errors.Is(err, store.ErrTitleAlreadyExists):
		return titleAlreadyExistsError(course.Title)
	case errors.Is(err, store.ErrCourseNotFound):
		return NewCourseNotFoundError(strconv.FormatInt(update.ID, 10))
	case err != nil:
		return fmt.Errorf("course update ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", course.ID).Msg("course updated")
	return nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id, actorID int64) error {
	if _, err := s.ownedCourse(ctx, id, actorID, "delete"); err != nil {
		return err
	}

	err := s.courseRepository.DeleteCourse(ctx, id)
	switch {
	case errors.Is(err, store.ErrCourseNotFound):
		return NewCourseNotFoundError(strconv.FormatInt(id, 10))
	case err != nil:
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("course deleted")
	return nil
}

// ownedCourse loads course id and checks that actorID owns it.
func (s *courseService) ownedCourse(ctx context.Context, id, actorID int64, action string) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrCourseNotFound):
		return models.Course{}, NewCourseNotFoundError(strconv.FormatInt(id, 10))
	case err != nil:
		return models.Course{}, fmt.Errorf("course search by id failed: %w", err)
	}

	if course.UserID != actorID {
		logger.FromContext(ctx).Warn().
			Int64("id", id).
			Int64("owner_id", course.UserID).
			Int64("actor_id", actorID).
			Msgf("user tried to %s a course they do not own", action)
		return models.Course{}, notOwnerError(action)
	}

	return course, nil
}
