package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

// AuthService resolves Basic Authentication credentials to a stored user.
type AuthService interface {
	// Authenticate looks the user up by exact email address and verifies
	// password against the stored hash with a single repository read.
	// Returns [ErrUserNotFound] or [ErrAuthenticationFailed].
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// UserService registers new accounts.
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}

// CourseService implements the course catalog operations, including the
// ownership rules on update and delete.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse stores a new course. actor becomes the owner when
	// req.UserID is zero.
	CreateCourse(ctx context.Context, actor models.User, req models.CourseRequest) (models.Course, error)

	UpdateCourse(ctx context.Context, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, id, actorID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// CourseServiceWrapper defines middleware composition for CourseService.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService
}
