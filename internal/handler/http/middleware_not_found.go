package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/app"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// routeNotFound answers 404 {"message": "Route Not Found"}. It is also
// registered as the router's MethodNotAllowed handler, so an unsupported
// method on a known path looks the same as an unknown path.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.routeNotFound").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route matched")

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound)
}
