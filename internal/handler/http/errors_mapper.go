package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/app"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:           http.StatusBadRequest,
	validators.ErrValidation: http.StatusBadRequest,

	service.ErrUserNotFound:         http.StatusUnauthorized,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	ErrNoCurrentUser:                http.StatusUnauthorized,

	service.ErrUserAlreadyExists:        http.StatusBadRequest,
	service.ErrCourseTitleAlreadyExists: http.StatusBadRequest,
	service.ErrCourseNotFound:           http.StatusBadRequest,
	service.ErrCourseOwnerNotFound:      http.StatusBadRequest,
	service.ErrNotCourseOwner:           http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err in the body shape its kind calls for:
//   - validation failures as {"errors": [...]}
//   - business rule failures as {"error": "..."}
//   - authentication and body decoding failures as {"message": "..."}
//   - anything else as 500 {"message": "<raw error>"}
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var validationErr *validators.ValidationError
	var clientErr *service.ClientError

	switch {
	case errors.As(err, &validationErr):
		log.Debug().Strs("errors", validationErr.Messages).Msg("request failed validation")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Messages}, status)
	case errors.As(err, &clientErr):
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: clientErr.Message}, status)
	case errors.Is(err, ErrInvalidJSON):
		log.Debug().Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidJSON}, status)
	case status == http.StatusUnauthorized:
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccessDenied}, status)
	default:
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusInternalServerError)
	}
}
