package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
	"github.com/soomspa/spa-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	WeeklyPreview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

// Preview implements SettlementHandler.
func (h *settlementHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req settlement.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settlementService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// WeeklyPreview implements SettlementHandler.
func (h *settlementHandlerImpl) WeeklyPreview(w http.ResponseWriter, r *http.Request) {
	req := settlement.WeeklyPreviewRequest{
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
	}

	result, err := h.settlementService.WeeklyPreview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements SettlementHandler.
func (h *settlementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req settlement.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settlementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Settlement confirmed", result)
}

// Get implements SettlementHandler.
func (h *settlementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settlementService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements SettlementHandler.
func (h *settlementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := settlement.ListFilter{}
	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("type"); v != "" {
		t := settlement.Type(v)
		filter.Type = &t
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

	result, err := h.settlementService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements SettlementHandler.
func (h *settlementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.settlementService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settlement deleted", nil)
}
