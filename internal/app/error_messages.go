// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// course catalog server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgWelcome is the body of GET /.
	MsgWelcome = "Welcome to the REST API project!"

	// MsgAccessDenied is returned for every Basic authentication failure.
	MsgAccessDenied = "Access Denied"

	// MsgRouteNotFound is returned for unknown paths and for unsupported
	// methods on known paths.
	MsgRouteNotFound = "Route Not Found"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"
)

// Log messages of the authentication middleware.
const (
	LogAuthHeaderNotFound    = "Auth header not found"
	LogUserNotFound          = "User not found for username: %s"
	LogAuthenticationFailure = "Authentication failure for username: %s"
)
