package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/mock"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserValidationService_RejectsBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	svc := NewUserValidationService(validators.NewRequestValidator()).
		Wrap(NewUserService(repo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop()))

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{EmailAddress: "bad"})
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestCourseValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCourseRepository(ctrl)
	svc := NewCourseValidationService(validators.NewRequestValidator()).
		Wrap(NewCourseService(repo, logger.Nop()))
	ctx := context.Background()

	t.Run("create rejected", func(t *testing.T) {
		_, err := svc.CreateCourse(ctx, actor, models.CourseRequest{Title: "T"})
		require.ErrorIs(t, err, validators.ErrValidation)
	})

	t.Run("update rejected before lookup", func(t *testing.T) {
		err := svc.UpdateCourse(ctx, models.CourseUpdate{ID: 1, ActorID: actor.ID})
		require.ErrorIs(t, err, validators.ErrValidation)
	})

	t.Run("reads pass through", func(t *testing.T) {
		repo.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{}, nil)
		repo.EXPECT().FindCourseByID(gomock.Any(), int64(1)).Return(models.Course{ID: 1}, nil)

		courses, err := svc.ListCourses(ctx)
		require.NoError(t, err)
		assert.Empty(t, courses)

		course, err := svc.GetCourse(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), course.ID)
	})

	t.Run("delete passes through", func(t *testing.T) {
		repo.EXPECT().FindCourseByID(gomock.Any(), int64(2)).Return(models.Course{ID: 2, UserID: actor.ID}, nil)
		repo.EXPECT().DeleteCourse(gomock.Any(), int64(2)).Return(nil)

		require.NoError(t, svc.DeleteCourse(ctx, 2, actor.ID))
	})

	t.Run("valid create reaches storage", func(t *testing.T) {
		repo.EXPECT().FindCourseByTitle(gomock.Any(), "T").Return(models.Course{ID: 1}, nil)

		_, err := svc.CreateCourse(ctx, actor, models.CourseRequest{Title: "T", Description: "D"})
		require.ErrorIs(t, err, ErrCourseTitleAlreadyExists)
		assert.NotErrorIs(t, err, validators.ErrValidation)
	})
}
