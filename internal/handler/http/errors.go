// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoCurrentUser is returned by handlers behind the auth middleware
	// when the request context carries no authenticated user.
	ErrNoCurrentUser = errors.New("no authenticated user in request context")
)
