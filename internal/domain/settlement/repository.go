package settlement

import (
	"context"
	"time"
)

type SettlementRepository interface {
	// Confirm persists the settlement and marks every extra payment in
	// extraPaymentIDs as settled, all inside one transaction guarded by a
	// per-employee lock. It fails with ErrAlreadySettled when a live
	// settlement of the same type overlaps the period, and with
	// ErrExtraPaymentsConsumed when any listed extra payment was already
	// flagged.
	Confirm(ctx context.Context, s Settlement, extraPaymentIDs []string) (Settlement, error)

	GetByID(ctx context.Context, id string) (Settlement, error)
	List(ctx context.Context, filter ListFilter) ([]Settlement, error)

	// Delete soft-deletes the settlement and restores its consumed extra
	// payments to unsettled, in one transaction.
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	EmployeeID *string
	Type       *Type
	From       *time.Time
	To         *time.Time
}
