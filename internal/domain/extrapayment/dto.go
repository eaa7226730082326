package extrapayment

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type CreateExtraPaymentRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Amount     string  `json:"amount"`
	PaidOn     string  `json:"paid_on"` // YYYY-MM-DD
	Memo       *string `json:"memo"`
}

func (r *CreateExtraPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be ADVANCE or BONUS",
		})
	}

	if amount, ok := validator.IsValidAmount(r.Amount); !ok || !validator.IsPositiveAmount(amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive amount",
		})
	}

	if _, ok := validator.IsValidDate(r.PaidOn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "paid_on",
			Message: "paid_on must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExtraPaymentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	PaidOn       string  `json:"paid_on"`
	Memo         *string `json:"memo,omitempty"`
	IsSettled    bool    `json:"is_settled"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(p ExtraPayment) ExtraPaymentResponse {
	return ExtraPaymentResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Type:         string(p.Type),
		Amount:       p.Amount.String(),
		PaidOn:       p.PaidOn.Format("2006-01-02"),
		Memo:         p.Memo,
		IsSettled:    p.IsSettled,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
