// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the course catalog REST API.
//
// The primary abstraction is [CatalogClient], which hides request
// construction, Basic authentication and response decoding. Non-2xx
// responses are mapped to [*APIError] values that unwrap to the sentinels in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

// CatalogClient talks to a running course catalog server.
type CatalogClient interface {
	// SetCredentials stores the Basic authentication credentials attached to
	// every request that requires them.
	SetCredentials(email, password string)

	// Welcome returns the message of GET /.
	Welcome(ctx context.Context) (string, error)

	// Version returns the plain-text server version of GET /api/version.
	Version(ctx context.Context) (string, error)

	// CreateUser registers a new account. No credentials are needed.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	// CurrentUser returns the account the stored credentials belong to.
	CurrentUser(ctx context.Context) (models.UserProjection, error)

	ListCourses(ctx context.Context) ([]models.CourseSummary, error)

	// GetCourse returns nil without an error when the course does not exist.
	GetCourse(ctx context.Context, id int64) (*models.Course, error)

	// CreateCourse returns the id taken from the Location header.
	CreateCourse(ctx context.Context, req models.CourseRequest) (int64, error)

	UpdateCourse(ctx context.Context, id int64, req models.CourseRequest) error
	DeleteCourse(ctx context.Context, id int64) error
}
