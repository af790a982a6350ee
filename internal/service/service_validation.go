package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// UserValidationService validates request bodies before handing them to the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// CourseValidationService validates create and update bodies. Reads and
// deletes pass straight through.
type CourseValidationService struct {
	inner     CourseService
	validator validators.Validator
}

func NewCourseValidationService(validator validators.Validator) CourseServiceWrapper {
	return &CourseValidationService{validator: validator}
}

func (v *CourseValidationService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return v.inner.ListCourses(ctx)
}

func (v *CourseValidationService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return v.inner.GetCourse(ctx, id)
}

func (v *CourseValidationService) CreateCourse(ctx context.Context, actor models.User, req models.CourseRequest) (models.Course, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Course{}, err
	}
	return v.inner.CreateCourse(ctx, actor, req)
}

func (v *CourseValidationService) UpdateCourse(ctx context.Context, update models.CourseUpdate) error {
	if err := v.validator.Validate(ctx, update.Fields); err != nil {
		return err
	}
	return v.inner.UpdateCourse(ctx, update)
}

func (v *CourseValidationService) DeleteCourse(ctx context.Context, id, actorID int64) error {
	return v.inner.DeleteCourse(ctx, id, actorID)
}

func (v *CourseValidationService) Wrap(inner CourseService) CourseService {
	v.inner = inner
	return v
}
