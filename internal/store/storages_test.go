package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: "file::memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "mysql", DSN: "x"},
	}, logger.Nop())
	require.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(nil, "oracle", logger.Nop())
	require.Error(t, err)
}

func Test_withForeignKeys(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", withForeignKeys("file::memory:"))
	assert.Equal(t, "db.sqlite?cache=shared&_foreign_keys=on", withForeignKeys("db.sqlite?cache=shared"))
	assert.Equal(t, "db.sqlite?_fk=1", withForeignKeys("db.sqlite?_fk=1"))
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{
		FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "hash",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	found, err := s.UserRepository.FindUserByEmail(ctx, "joe@smith.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.Password)
	assert.False(t, found.CreatedAt.IsZero())

	byID, err := s.UserRepository.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe@smith.com", byID.EmailAddress)

	_, err = s.UserRepository.FindUserByEmail(ctx, "JOE@smith.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.UserRepository.CreateUser(ctx, models.User{
		FirstName: "J", LastName: "S", EmailAddress: "joe@smith.com", Password: "other",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSQLite_CourseLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.User{
		FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "hash",
	})
	require.NoError(t, err)

	hours := "10 hours"
	course, err := s.CourseRepository.CreateCourse(ctx, models.Course{
		UserID: owner.ID, Title: "Learn Go", Description: "All of it", EstimatedTime: &hours,
	})
	require.NoError(t, err)

	_, err = s.CourseRepository.CreateCourse(ctx, models.Course{
		UserID: owner.ID, Title: "Learn Go", Description: "Again",
	})
	require.ErrorIs(t, err, ErrTitleAlreadyExists)

	_, err = s.CourseRepository.CreateCourse(ctx, models.Course{
		UserID: owner.ID + 100, Title: "Orphan", Description: "No owner",
	})
	require.ErrorIs(t, err, ErrCourseOwnerNotFound)

	byTitle, err := s.CourseRepository.FindCourseByTitle(ctx, "Learn Go")
	require.NoError(t, err)
	assert.Equal(t, course.ID, byTitle.ID)
	require.NotNil(t, byTitle.EstimatedTime)
	assert.Equal(t, hours, *byTitle.EstimatedTime)
	assert.Nil(t, byTitle.MaterialsNeeded)

	laptop := "laptop"
	require.NoError(t, s.CourseRepository.UpdateCourse(ctx, models.Course{
		ID: course.ID, UserID: owner.ID + 100, Title: "Learn Go Deeply", Description: "More", MaterialsNeeded: &laptop,
	}))

	updated, err := s.CourseRepository.FindCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go Deeply", updated.Title)
	assert.Equal(t, owner.ID, updated.UserID)
	assert.Nil(t, updated.EstimatedTime)
	assert.Equal(t, laptop, *updated.MaterialsNeeded)

	list, err := s.CourseRepository.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.CourseRepository.DeleteCourse(ctx, course.ID))
	require.ErrorIs(t, s.CourseRepository.DeleteCourse(ctx, course.ID), ErrCourseNotFound)

	_, err = s.CourseRepository.FindCourseByID(ctx, course.ID)
	require.ErrorIs(t, err, ErrCourseNotFound)
}
