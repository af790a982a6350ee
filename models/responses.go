// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse carries a single business-rule failure,
// e.g. {"error": "User already exists"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries an informational or authentication message,
// e.g. {"message": "Access Denied"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse lists every failed field rule in declaration order.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
