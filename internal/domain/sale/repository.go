package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionSummary is the per-employee commission aggregate over a period,
// consumed by the settlement aggregator.
type CommissionSummary struct {
	EmployeeID     string
	SaleCount      int
	CommissionSum  decimal.Decimal
	ChoiceFeeSum   decimal.Decimal
	ChoiceCount    int
	TotalSalePrice decimal.Decimal
}

type SaleRepository interface {
	// Create inserts the sale and its therapist rows atomically.
	Create(ctx context.Context, newSale Sale) (Sale, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	List(ctx context.Context, filter ListSalesFilter) ([]Sale, error)

	// Replace updates the sale row and swaps all therapist rows for the
	// given set, in one transaction. Commission values on the new rows
	// must already be computed.
	Replace(ctx context.Context, s Sale) (Sale, error)
	Delete(ctx context.Context, id string) error

	// SumCommissions aggregates commission and choice fees per employee for
	// sales sold within [from, to] (inclusive).
	SumCommissions(ctx context.Context, employeeID string, from, to time.Time) (CommissionSummary, error)

	// SumCommissionsForAll returns one summary per employee that had any
	// commission in the period.
	SumCommissionsForAll(ctx context.Context, from, to time.Time) ([]CommissionSummary, error)
}
