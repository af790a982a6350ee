package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger stores log in the request context the way withTraceID does.
func injectLogger(r *http.Request, log *logger.Logger) *http.Request {
	return r.WithContext(log.WithContext(r.Context()))
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		setAuth    func(r *http.Request)
		wantStatus int
		wantLog    string
		wantCalls  int
	}{
		{
			name:       "no header",
			setAuth:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantLog:    "Auth header not found",
		},
		{
			name:       "bearer instead of basic",
			setAuth:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			wantStatus: http.StatusUnauthorized,
			wantLog:    "Auth header not found",
		},
		{
			name:       "broken base64",
			setAuth:    func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") },
			wantStatus: http.StatusUnauthorized,
			wantLog:    "Auth header not found",
		},
		{
			name:       "unknown user",
			setAuth:    func(r *http.Request) { r.SetBasicAuth("nobody@example.com", testPassword) },
			wantStatus: http.StatusUnauthorized,
			wantLog:    "User not found for username: nobody@example.com",
			wantCalls:  1,
		},
		{
			name:       "wrong password",
			setAuth:    func(r *http.Request) { r.SetBasicAuth(testEmail, "wrong") },
			wantStatus: http.StatusUnauthorized,
			wantLog:    "Authentication failure for username: " + testEmail,
			wantCalls:  1,
		},
		{
			name:       "valid credentials",
			setAuth:    func(r *http.Request) { r.SetBasicAuth(testEmail, testPassword) },
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := acceptingAuth()
			h := newTestHandler(&service.Services{AuthService: auth})

			var gotUser models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := utils.GetCurrentUserFromContext(r.Context())
				require.True(t, ok)
				gotUser = user
				w.WriteHeader(http.StatusOK)
			})

			var buf bytes.Buffer
			log := &logger.Logger{Logger: zerolog.New(&buf)}

			req := injectLogger(httptest.NewRequest(http.MethodGet, "/api/users", nil), log)
			tt.setAuth(req)
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, auth.calls)

			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, tt.wantLog, entry["message"])
				return
			}

			assert.Equal(t, testUser, gotUser)
		})
	}
}

func TestAuth_StorageFailure(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{
		authenticate: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth(testEmail, testPassword)
	rec := httptest.NewRecorder()

	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"connection refused"}`, rec.Body.String())
}
