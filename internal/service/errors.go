package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failure")

	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrCourseTitleAlreadyExists = errors.New("course title already exists")
	ErrCourseNotFound           = errors.New("course not found")
	ErrCourseOwnerNotFound      = errors.New("course owner not found")
	ErrNotCourseOwner           = errors.New("user is not the course owner")
)

// ClientError pairs a sentinel with the message reported to API clients.
// errors.Is matches it against the sentinel.
type ClientError struct {
	Err     error
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func newClientError(err error, format string, args ...any) error {
	return &ClientError{Err: err, Message: fmt.Sprintf(format, args...)}
}

// NewCourseNotFoundError reports that no course exists for the raw id the
// client supplied, which may not even be numeric.
func NewCourseNotFoundError(id string) error {
	return newClientError(ErrCourseNotFound, "Course with id: %s not found.", id)
}

func userAlreadyExistsError() error {
	return newClientError(ErrUserAlreadyExists, "User already exists")
}

func titleAlreadyExistsError(title string) error {
	return newClientError(ErrCourseTitleAlreadyExists, "Course with title \"%s\" already exists.", title)
}

func ownerNotFoundError(id int64) error {
	return newClientError(ErrCourseOwnerNotFound, "User with id: %d not found.", id)
}

func notOwnerError(action string) error {
	return newClientError(ErrNotCourseOwner, "Users can only %s their own courses.", action)
}
