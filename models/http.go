// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the body of POST /api/users.
// Password arrives in plaintext and is hashed before it reaches storage.
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// CourseRequest is the body of POST /api/courses and PUT /api/courses/{id}.
type CourseRequest struct {
	// UserID names the owner on creation. When zero the authenticated user
	// becomes the owner. It is ignored on update.
	UserID int64 `json:"userId,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description"`

	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseUpdate carries the mutable course fields together with the
// identifiers needed to authorize the change.
type CourseUpdate struct {
	// ID is the course being modified.
	ID int64

	// ActorID is the authenticated user performing the change.
	ActorID int64

	Fields CourseRequest
}
