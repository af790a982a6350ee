package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/go-resty/resty/v2"
)

const courseLocationPrefix = "/course/"

// Config configures [NewHTTPCatalogClient].
type Config struct {
	// BaseURL is the server address. The scheme defaults to http.
	BaseURL string
	Timeout time.Duration
}

type httpCatalogClient struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	email    string
	password string

	logger *logger.Logger
}

// NewHTTPCatalogClient constructs an HTTP/REST implementation of
// [CatalogClient]. It normalises and validates cfg.BaseURL and returns
// [ErrInvalidBaseURL] if it is empty or cannot be parsed.
func NewHTTPCatalogClient(cfg Config, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpCatalogClient{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpCatalogClient) SetCredentials(email, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.email, c.password = email, password
}

func (c *httpCatalogClient) Welcome(ctx context.Context) (string, error) {
	var body models.MessageResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.Message, nil
}

func (c *httpCatalogClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (c *httpCatalogClient) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCatalogClient) CurrentUser(ctx context.Context) (models.UserProjection, error) {
	var user models.UserProjection

	resp, err := c.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users")
	if err != nil {
		return models.UserProjection{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProjection{}, err
	}

	return user, nil
}

func (c *httpCatalogClient) ListCourses(ctx context.Context) ([]models.CourseSummary, error) {
	var courses []models.CourseSummary

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/api/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

func (c *httpCatalogClient) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course *models.Course

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&course).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/courses/{id}")
	if err != nil {
		return nil, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return course, nil
}

func (c *httpCatalogClient) CreateCourse(ctx context.Context, req models.CourseRequest) (int64, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/courses")
	if err != nil {
		return 0, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	location := resp.Header().Get("Location")
	id, err := strconv.ParseInt(strings.TrimPrefix(location, courseLocationPrefix), 10, 64)
	if err != nil || !strings.HasPrefix(location, courseLocationPrefix) {
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedLocation, location)
	}

	c.logger.Debug().Str("func", "*httpCatalogClient.CreateCourse").Int64("course_id", id).Msg("course created")
	return id, nil
}

func (c *httpCatalogClient) UpdateCourse(ctx context.Context, id int64, req models.CourseRequest) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put("/api/courses/{id}")
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCatalogClient) DeleteCourse(ctx context.Context, id int64) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/courses/{id}")
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCatalogClient) authedRequest(ctx context.Context) *resty.Request {
	c.mu.RLock()
	email, password := c.email, c.password
	c.mu.RUnlock()

	req := c.client.R().SetContext(ctx)
	if email != "" || password != "" {
		req.SetBasicAuth(email, password)
	}
	return req
}
