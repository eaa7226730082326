package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	// ErrAlreadySettled fires when a live settlement of the same type
	// already overlaps the requested period for the employee.
	ErrAlreadySettled        = errors.New("this period has already been settled for the employee")
	ErrInvalidPeriod         = errors.New("period_end cannot be before period_start")
	ErrExtraPaymentsConsumed = errors.New("one or more extra payments were already consumed by another settlement")
)
