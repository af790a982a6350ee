package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	summaries := make([]models.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, course.Summary())
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

// getCourse answers 200 with JSON null when the course does not exist,
// including ids that are not numeric.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw, id, err := courseIDParam(r)
	if err != nil {
		log.Debug().Str("func", "*Handler.getCourse").Str("id", raw).Msg("non-numeric course id")
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			utils.WriteJSON(w, nil, http.StatusOK)
			return
		}
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CourseRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.createCourse").Int64("course_id", course.ID).Msg("course created")
	utils.WriteCreated(w, "/course/"+strconv.FormatInt(course.ID, 10))
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CourseRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	// A non-numeric id names no course, but the body is still validated
	// first as it is for numeric ids.
	raw, id, err := courseIDParam(r)
	if err != nil {
		if err = h.validator.Validate(r.Context(), req); err == nil {
			err = service.NewCourseNotFoundError(raw)
		}
		h.writeError(w, r, err)
		return
	}

	update := models.CourseUpdate{ID: id, ActorID: actor.ID, Fields: req}
	if err = h.services.CourseService.UpdateCourse(r.Context(), update); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	raw, id, err := courseIDParam(r)
	if err != nil {
		h.writeError(w, r, service.NewCourseNotFoundError(raw))
		return
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), id, actor.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
