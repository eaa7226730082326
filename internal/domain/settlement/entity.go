package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeWeekly  Type = "WEEKLY"
	TypeMonthly Type = "MONTHLY"
)

func ValidTypes() []string {
	return []string{string(TypeWeekly), string(TypeMonthly)}
}

// Settlement is a finalized one-time payout for an employee over a period.
// At most one live settlement may exist per employee, type and overlapping
// period; the advance/bonus rows it consumed are locked until it is deleted.
type Settlement struct {
	ID          string
	EmployeeID  string
	Type        Type
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalAmount decimal.Decimal
	Details     Breakdown
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
}

// Breakdown is the payout snapshot persisted with the settlement, so the
// figures survive later edits to the underlying rows.
type Breakdown struct {
	WorkedDays     int             `json:"worked_days"`
	TotalWorkHours decimal.Decimal `json:"total_work_hours"`
	SaleCount      int             `json:"sale_count"`

	BaseAmount       decimal.Decimal `json:"base_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	ChoiceFeeAmount  decimal.Decimal `json:"choice_fee_amount"`
	MealAllowance    decimal.Decimal `json:"meal_allowance"`
	BonusAmount      decimal.Decimal `json:"bonus_amount"`
	AdvanceAmount    decimal.Decimal `json:"advance_amount"`
}
