package http

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	authenticate func(ctx context.Context, email, password string) (models.User, error)
	calls        int
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	m.calls++
	return m.authenticate(ctx, email, password)
}

// ---- Mock: UserService ----

type mockUserService struct {
	createUser func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createUser(ctx, req)
}

// ---- Mock: CourseService ----

type mockCourseService struct {
	listCourses  func(ctx context.Context) ([]models.Course, error)
	getCourse    func(ctx context.Context, id int64) (models.Course, error)
	createCourse func(ctx context.Context, actor models.User, req models.CourseRequest) (models.Course, error)
	updateCourse func(ctx context.Context, update models.CourseUpdate) error
	deleteCourse func(ctx context.Context, id, actorID int64) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return m.listCourses(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return m.getCourse(ctx, id)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, actor models.User, req models.CourseRequest) (models.Course, error) {
	return m.createCourse(ctx, actor, req)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, update models.CourseUpdate) error {
	return m.updateCourse(ctx, update)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, id, actorID int64) error {
	return m.deleteCourse(ctx, id, actorID)
}

// ---- Mock: AppInfoService ----

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

const (
	testEmail    = "joe@smith.com"
	testPassword = "joepassword"
)

var testUser = models.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: testEmail}

// acceptingAuth authenticates testEmail/testPassword as testUser.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		authenticate: func(_ context.Context, email, password string) (models.User, error) {
			if email != testEmail {
				return models.User{}, service.ErrUserNotFound
			}
			if password != testPassword {
				return models.User{}, service.ErrAuthenticationFailed
			}
			return testUser, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:  services,
		traceIDs:  utils.NewUUIDGenerator(),
		validator: validators.NewRequestValidator(),
		logger:    logger.Nop(),
	}
}
