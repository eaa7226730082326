package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/soomspa/spa-backend-go/internal/handler/http/response"
)

type CourseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type courseHandlerImpl struct {
	courseService course.CourseService
}

func NewCourseHandler(courseService course.CourseService) CourseHandler {
	return &courseHandlerImpl{courseService: courseService}
}

// Create implements CourseHandler.
func (h *courseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req course.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.courseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Course created", result)
}

// Get implements CourseHandler.
func (h *courseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.courseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements CourseHandler.
func (h *courseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.courseService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements CourseHandler.
func (h *courseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req course.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.courseService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements CourseHandler.
func (h *courseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.courseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Course deleted", nil)
}
