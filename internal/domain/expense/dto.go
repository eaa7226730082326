package expense

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	Category string  `json:"category"`
	Amount   string  `json:"amount"`
	SpentOn  string  `json:"spent_on"` // YYYY-MM-DD
	Memo     *string `json:"memo"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if amount, ok := validator.IsValidAmount(r.Amount); !ok || !validator.IsPositiveAmount(amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive amount",
		})
	}

	if _, ok := validator.IsValidDate(r.SpentOn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "spent_on",
			Message: "spent_on must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExpenseRequest struct {
	ID       string  `json:"-"`
	Category *string `json:"category"`
	Amount   *string `json:"amount"`
	SpentOn  *string `json:"spent_on"`
	Memo     *string `json:"memo"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Category != nil && validator.IsEmpty(*r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category cannot be empty",
		})
	}

	if r.Amount != nil {
		if amount, ok := validator.IsValidAmount(*r.Amount); !ok || !validator.IsPositiveAmount(amount) {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must be a positive amount",
			})
		}
	}

	if r.SpentOn != nil {
		if _, ok := validator.IsValidDate(*r.SpentOn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "spent_on",
				Message: "spent_on must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    string  `json:"amount"`
	SpentOn   string  `json:"spent_on"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount.String(),
		SpentOn:   e.SpentOn.Format("2006-01-02"),
		Memo:      e.Memo,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
