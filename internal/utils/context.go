// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the resolved [models.User].
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// GetCurrentUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetCurrentUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
