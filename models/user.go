// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can authenticate against the API and own
// courses. Password always holds a bcrypt hash, never the plaintext value.
type User struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// EmailAddress is unique across all users and doubles as the Basic
	// Authentication username.
	EmailAddress string `json:"emailAddress"`

	// Password is the salted one-way hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Projection returns the public view of the user without the password hash
// and timestamps.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// UserProjection is the shape returned by GET /api/users.
type UserProjection struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
