package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/handler/http/response"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &saleHandlerImpl{saleService: saleService}
}

// Create implements SaleHandler.
func (h *saleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.saleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Sale recorded", result)
}

// Get implements SaleHandler.
func (h *saleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.saleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements SaleHandler.
func (h *saleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := sale.ListSalesFilter{}
	query := r.URL.Query()
	if v := query.Get("from"); v != "" {
		filter.From = &v
	}
	if v := query.Get("to"); v != "" {
		filter.To = &v
	}
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("course_id"); v != "" {
		filter.CourseID = &v
	}

	result, err := h.saleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements SaleHandler.
func (h *saleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sale.UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.saleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements SaleHandler.
func (h *saleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.saleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sale deleted", nil)
}
