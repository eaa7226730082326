package sale

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type SaleTherapistInput struct {
	EmployeeID string `json:"employee_id"`
	IsChoice   bool   `json:"is_choice"`
}

type CreateSaleRequest struct {
	CourseID   string               `json:"course_id"`
	PayMethod  string               `json:"pay_method"`
	TotalPrice string               `json:"total_price"`
	SoldAt     *string              `json:"sold_at"` // RFC3339; defaults to now
	Therapists []SaleTherapistInput `json:"therapists"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CourseID) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_id",
			Message: "course_id is required",
		})
	}

	if !validator.IsInSlice(r.PayMethod, ValidPayMethods()) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_method",
			Message: "pay_method must be CASH, CARD or TRANSFER",
		})
	}

	if price, ok := validator.IsValidAmount(r.TotalPrice); !ok || !validator.IsPositiveAmount(price) {
		errs = append(errs, validator.ValidationError{
			Field:   "total_price",
			Message: "total_price must be a positive amount",
		})
	}

	if r.SoldAt != nil {
		if _, ok := validator.IsValidDateTime(*r.SoldAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "sold_at",
				Message: "sold_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(r.Therapists) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "therapists",
			Message: "at least one therapist is required",
		})
	}
	seen := make(map[string]bool, len(r.Therapists))
	for _, t := range r.Therapists {
		if validator.IsEmpty(t.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "therapists",
				Message: "therapist employee_id is required",
			})
			continue
		}
		if seen[t.EmployeeID] {
			errs = append(errs, validator.ValidationError{
				Field:   "therapists",
				Message: "the same therapist cannot appear twice",
			})
		}
		seen[t.EmployeeID] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSaleRequest struct {
	ID         string               `json:"-"`
	CourseID   string               `json:"course_id"`
	PayMethod  string               `json:"pay_method"`
	TotalPrice string               `json:"total_price"`
	SoldAt     *string              `json:"sold_at"`
	Therapists []SaleTherapistInput `json:"therapists"`
}

func (r *UpdateSaleRequest) Validate() error {
	create := CreateSaleRequest{
		CourseID:   r.CourseID,
		PayMethod:  r.PayMethod,
		TotalPrice: r.TotalPrice,
		SoldAt:     r.SoldAt,
		Therapists: r.Therapists,
	}
	err := create.Validate()

	if validator.IsEmpty(r.ID) {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs = nil
		}
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
		return errs
	}
	return err
}

type ListSalesFilter struct {
	From       *string // YYYY-MM-DD, business-day inclusive
	To         *string
	EmployeeID *string
	CourseID   *string
}

type SaleTherapistResponse struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	IsChoice         bool    `json:"is_choice"`
	CommissionAmount string  `json:"commission_amount"`
	ChoiceFee        string  `json:"choice_fee"`
}

type SaleResponse struct {
	ID         string                  `json:"id"`
	CourseID   string                  `json:"course_id"`
	CourseName *string                 `json:"course_name,omitempty"`
	CourseType *string                 `json:"course_type,omitempty"`
	PayMethod  string                  `json:"pay_method"`
	TotalPrice string                  `json:"total_price"`
	SoldAt     string                  `json:"sold_at"`
	Therapists []SaleTherapistResponse `json:"therapists"`
	CreatedAt  string                  `json:"created_at"`
	UpdatedAt  string                  `json:"updated_at"`
}

func ToResponse(s Sale) SaleResponse {
	therapists := make([]SaleTherapistResponse, 0, len(s.Therapists))
	for _, t := range s.Therapists {
		therapists = append(therapists, SaleTherapistResponse{
			EmployeeID:       t.EmployeeID,
			EmployeeName:     t.EmployeeName,
			IsChoice:         t.IsChoice,
			CommissionAmount: t.CommissionAmount.String(),
			ChoiceFee:        t.ChoiceFee.String(),
		})
	}
	return SaleResponse{
		ID:         s.ID,
		CourseID:   s.CourseID,
		CourseName: s.CourseName,
		CourseType: s.CourseType,
		PayMethod:  string(s.PayMethod),
		TotalPrice: s.TotalPrice.String(),
		SoldAt:     s.SoldAt.Format("2006-01-02 15:04:05"),
		Therapists: therapists,
		CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
