package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// courseIDParam returns the raw {id} URL parameter and its numeric value.
func courseIDParam(r *http.Request) (string, int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	return raw, id, err
}

func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoCurrentUser
	}
	return user, nil
}
