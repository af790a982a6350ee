package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting a user violates the
	// unique email address constraint.
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTitleAlreadyExists is returned when inserting or updating a course
	// violates the unique title constraint.
	ErrTitleAlreadyExists = errors.New("course title already exists")

	// ErrCourseNotFound is returned when no course matches the lookup, or an
	// update/delete affected no rows.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrCourseOwnerNotFound is returned when a course references a user id
	// that does not exist.
	ErrCourseOwnerNotFound = errors.New("course owner was not found")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
