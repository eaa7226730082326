package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/handler/http/response"
)

type ExtraPaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type extraPaymentHandlerImpl struct {
	extraPaymentService extrapayment.ExtraPaymentService
}

func NewExtraPaymentHandler(extraPaymentService extrapayment.ExtraPaymentService) ExtraPaymentHandler {
	return &extraPaymentHandlerImpl{extraPaymentService: extraPaymentService}
}

// Create implements ExtraPaymentHandler.
func (h *extraPaymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req extrapayment.CreateExtraPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.extraPaymentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Extra payment recorded", result)
}

// Get implements ExtraPaymentHandler.
func (h *extraPaymentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.extraPaymentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements ExtraPaymentHandler.
func (h *extraPaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := extrapayment.ListFilter{}
	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "from must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.From = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "to must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.To = &to
	}
	filter.UnsettledOnly = query.Get("unsettled_only") == "true"

	result, err := h.extraPaymentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements ExtraPaymentHandler.
func (h *extraPaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.extraPaymentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Extra payment deleted", nil)
}
