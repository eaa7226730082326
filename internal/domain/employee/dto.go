package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	PhoneNumber   *string `json:"phone_number"`
	Role          string  `json:"role"`
	JoinedAt      string  `json:"joined_at"` // YYYY-MM-DD
	BaseSalary    *string `json:"base_salary"`
	HourlyRate    *string `json:"hourly_rate"`
	MealAllowance *string `json:"meal_allowance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of OWNER, MANAGER, THERAPIST, STAFF",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joined_at",
			Message: "joined_at must be a valid date (YYYY-MM-DD)",
		})
	}

	errs = append(errs, validateAmountField("base_salary", r.BaseSalary)...)
	errs = append(errs, validateAmountField("hourly_rate", r.HourlyRate)...)
	errs = append(errs, validateAmountField("meal_allowance", r.MealAllowance)...)

	switch Role(r.Role) {
	case RoleOwner, RoleManager:
		if r.BaseSalary == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary is required for salaried roles",
			})
		}
	case RoleStaff:
		if r.HourlyRate == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate is required for hourly staff",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateAmountField(field string, value *string) validator.ValidationErrors {
	if value == nil {
		return nil
	}
	amount, ok := validator.IsValidAmount(*value)
	if !ok || amount.IsNegative() {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be a non-negative amount",
		}}
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name"`
	PhoneNumber   *string `json:"phone_number"`
	Role          *string `json:"role"`
	BaseSalary    *string `json:"base_salary"`
	HourlyRate    *string `json:"hourly_rate"`
	MealAllowance *string `json:"meal_allowance"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of OWNER, MANAGER, THERAPIST, STAFF",
		})
	}

	errs = append(errs, validateAmountField("base_salary", r.BaseSalary)...)
	errs = append(errs, validateAmountField("hourly_rate", r.HourlyRate)...)
	errs = append(errs, validateAmountField("meal_allowance", r.MealAllowance)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResignEmployeeRequest struct {
	ID         string `json:"-"`
	ResignedAt string `json:"resigned_at"` // YYYY-MM-DD
}

func (r *ResignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.ResignedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "resigned_at",
			Message: "resigned_at must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	ActiveOnly bool
	Role       *Role
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Role          string  `json:"role"`
	JoinedAt      string  `json:"joined_at"`
	ResignedAt    *string `json:"resigned_at,omitempty"`
	BaseSalary    *string `json:"base_salary,omitempty"`
	HourlyRate    *string `json:"hourly_rate,omitempty"`
	MealAllowance *string `json:"meal_allowance,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		PhoneNumber: e.PhoneNumber,
		Role:        string(e.Role),
		JoinedAt:    e.JoinedAt.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.ResignedAt != nil {
		s := e.ResignedAt.Format("2006-01-02")
		resp.ResignedAt = &s
	}
	resp.BaseSalary = decimalPtrToString(e.BaseSalary)
	resp.HourlyRate = decimalPtrToString(e.HourlyRate)
	resp.MealAllowance = decimalPtrToString(e.MealAllowance)
	return resp
}

func decimalPtrToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// ParseDate is a small helper for the YYYY-MM-DD request fields.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
