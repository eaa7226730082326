package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a shop-level cost (rent, supplies, utilities), independent of
// payroll. It only feeds the dashboard profit figures.
type Expense struct {
	ID        string
	Category  string
	Amount    decimal.Decimal
	SpentOn   time.Time
	Memo      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
