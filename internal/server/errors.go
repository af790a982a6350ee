// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	ErrListen   = errors.New("HTTP server listen failed")
	ErrShutdown = errors.New("HTTP server shutdown failed")
)
