package extrapayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	// TypeAdvance is money paid out ahead of settlement; it is deducted
	// from the next payout.
	TypeAdvance Type = "ADVANCE"
	// TypeBonus is added to the next payout.
	TypeBonus Type = "BONUS"
)

func ValidTypes() []string {
	return []string{string(TypeAdvance), string(TypeBonus)}
}

// ExtraPayment is an ad-hoc advance or bonus. Once consumed by a settlement
// (IsSettled = true) it can be neither deleted nor counted again; deleting
// that settlement flips it back.
type ExtraPayment struct {
	ID         string
	EmployeeID string
	Type       Type
	Amount     decimal.Decimal
	PaidOn     time.Time
	Memo       *string
	IsSettled  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
