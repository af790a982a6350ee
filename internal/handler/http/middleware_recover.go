package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// withRecover turns a panic in a downstream handler into
// 500 {"message": "<panic value>"}. [http.ErrAbortHandler] is re-raised
// so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecover").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprint(rec)}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
