// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and panic recovery
// are handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/app"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// auth is an HTTP middleware that enforces Basic authentication.
//
// The username is matched exactly against a stored email address and the
// password is verified against its hash via [service.AuthService.Authenticate].
// On success the resolved user is stored in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Every rejection is answered with 401 {"message": "Access Denied"}:
//   - the "Authorization" header is absent or is not a Basic credential
//   - no user has the given email address
//   - the password does not match
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Str("func", "*Handler.auth").Msg(app.LogAuthHeaderNotFound)
			accessDenied(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, username, password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				log.Warn().Str("func", "*Handler.auth").Msgf(app.LogUserNotFound, username)
				accessDenied(w)
			case errors.Is(err, service.ErrAuthenticationFailed):
				log.Warn().Str("func", "*Handler.auth").Msgf(app.LogAuthenticationFailure, username)
				accessDenied(w)
			default:
				h.writeError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

func accessDenied(w http.ResponseWriter) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccessDenied}, http.StatusUnauthorized)
}
