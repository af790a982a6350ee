// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by every
// layer of the course catalog server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers (carrying the trace id) are stored in the request
// context by the HTTP layer and retrieved with FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Option customizes a Logger built by NewLogger.
type Option func(*options)

type options struct {
	out   io.Writer
	level zerolog.Level
}

// WithOutput redirects log output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the minimum level emitted (default Debug).
func WithLevel(level zerolog.Level) Option {
	return func(o *options) { o.level = level }
}

// NewLogger constructs a JSON *Logger for the given role label
// (e.g. "course-catalog-server").
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp;
//   - a "func" caller field with the fully-qualified function name
//     instead of the default file:line.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{out: os.Stdout, level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(o.out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a textual level ("debug", "info", ...) into a zerolog
// level. An empty string yields Debug.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zerolog.DebugLevel, nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	return parsed, nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger stored in the request's context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. If none has been attached,
// zerolog's default (disabled or global) logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
