package settlement

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type PreviewRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"` // YYYY-MM-DD, inclusive
	PeriodEnd   string `json:"period_end"`   // YYYY-MM-DD, inclusive
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validatePeriod(r.PeriodStart, r.PeriodEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid date (YYYY-MM-DD)",
		})
	}
	endDate, endOK := validator.IsValidDate(end)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end cannot be before period_start",
		})
	}
	return errs
}

type WeeklyPreviewRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *WeeklyPreviewRequest) Validate() error {
	if errs := validatePeriod(r.PeriodStart, r.PeriodEnd); len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSettlementRequest struct {
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *CreateSettlementRequest) Validate() error {
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
			Message: "type must be WEEKLY or MONTHLY",
		})
	}

	errs = append(errs, validatePeriod(r.PeriodStart, r.PeriodEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BreakdownResponse mirrors Breakdown with string amounts for JSON.
type BreakdownResponse struct {
	WorkedDays       int    `json:"worked_days"`
	TotalWorkHours   string `json:"total_work_hours"`
	SaleCount        int    `json:"sale_count"`
	BaseAmount       string `json:"base_amount"`
	CommissionAmount string `json:"commission_amount"`
	ChoiceFeeAmount  string `json:"choice_fee_amount"`
	MealAllowance    string `json:"meal_allowance"`
	BonusAmount      string `json:"bonus_amount"`
	AdvanceAmount    string `json:"advance_amount"`
}

func ToBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		WorkedDays:       b.WorkedDays,
		TotalWorkHours:   b.TotalWorkHours.String(),
		SaleCount:        b.SaleCount,
		BaseAmount:       b.BaseAmount.String(),
		CommissionAmount: b.CommissionAmount.String(),
		ChoiceFeeAmount:  b.ChoiceFeeAmount.String(),
		MealAllowance:    b.MealAllowance.String(),
		BonusAmount:      b.BonusAmount.String(),
		AdvanceAmount:    b.AdvanceAmount.String(),
	}
}

type PreviewResponse struct {
	EmployeeID      string            `json:"employee_id"`
	EmployeeName    *string           `json:"employee_name,omitempty"`
	PeriodStart     string            `json:"period_start"`
	PeriodEnd       string            `json:"period_end"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	TotalAmount     string            `json:"total_amount"`
	ExtraPaymentIDs []string          `json:"extra_payment_ids"`
}

// WeeklyPreviewItem is the commission-only preview row, one per therapist.
type WeeklyPreviewItem struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	SaleCount        int    `json:"sale_count"`
	ChoiceCount      int    `json:"choice_count"`
	CommissionAmount string `json:"commission_amount"`
	ChoiceFeeAmount  string `json:"choice_fee_amount"`
	TotalAmount      string `json:"total_amount"`
}

type SettlementResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	EmployeeRole *string           `json:"employee_role,omitempty"`
	Type         string            `json:"type"`
	PeriodStart  string            `json:"period_start"`
	PeriodEnd    string            `json:"period_end"`
	TotalAmount  string            `json:"total_amount"`
	Details      BreakdownResponse `json:"details"`
	CreatedAt    string            `json:"created_at"`
}

func ToResponse(s Settlement) SettlementResponse {
	return SettlementResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		EmployeeRole: s.EmployeeRole,
		Type:         string(s.Type),
		PeriodStart:  s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    s.PeriodEnd.Format("2006-01-02"),
		TotalAmount:  s.TotalAmount.String(),
		Details:      ToBreakdownResponse(s.Details),
		CreatedAt:    s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
