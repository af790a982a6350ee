// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and timestamps set.
	// Returns [ErrEmailAlreadyExists] on a duplicate email address.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email address matches exactly,
	// or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// CourseRepository persists and looks up courses.
type CourseRepository interface {
	// CreateCourse inserts course and returns it with ID and timestamps set.
	// Returns [ErrTitleAlreadyExists] on a duplicate title and
	// [ErrCourseOwnerNotFound] when UserID does not reference a user.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// FindCourseByID returns the course with the given id, or [ErrCourseNotFound].
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)

	// FindCourseByTitle returns the course with exactly this title,
	// or [ErrCourseNotFound].
	FindCourseByTitle(ctx context.Context, title string) (models.Course, error)

	// ListCourses returns every course ordered by id.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// UpdateCourse overwrites the content fields of the course identified by
	// course.ID. The owner is never changed.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes the course with the given id.
	DeleteCourse(ctx context.Context, id int64) error
}

// ErrorClassificator maps driver-specific errors onto the constraint
// violations the repositories translate into domain errors.
type ErrorClassificator interface {
	Classify(err error) ConstraintViolation
}
