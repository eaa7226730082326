package extrapayment

import (
	"context"
	"time"
)

type ExtraPaymentRepository interface {
	Create(ctx context.Context, payment ExtraPayment) (ExtraPayment, error)
	GetByID(ctx context.Context, id string) (ExtraPayment, error)
	List(ctx context.Context, filter ListFilter) ([]ExtraPayment, error)

	// ListUnsettled returns the employee's unconsumed advances and bonuses
	// dated within [from, to]; the settlement aggregator feeds on these.
	ListUnsettled(ctx context.Context, employeeID string, from, to time.Time) ([]ExtraPayment, error)

	// Delete refuses with ErrAlreadySettled when the row is consumed.
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	EmployeeID    *string
	From          *time.Time
	To            *time.Time
	UnsettledOnly bool
}
