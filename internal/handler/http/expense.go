package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/expense"
	"github.com/soomspa/spa-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{expenseService: expenseService}
}

// Create implements ExpenseHandler.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Expense recorded", result)
}

// Get implements ExpenseHandler.
func (h *expenseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.expenseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements ExpenseHandler.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{}
	query := r.URL.Query()
	if v := query.Get("category"); v != "" {
		filter.Category = &v
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

	result, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements ExpenseHandler.
func (h *expenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req expense.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.expenseService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements ExpenseHandler.
func (h *expenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Expense deleted", nil)
}
