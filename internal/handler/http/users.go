package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Projection(), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.createUser").Int64("user_id", user.ID).Msg("user created")
	utils.WriteCreated(w, "/")
}
