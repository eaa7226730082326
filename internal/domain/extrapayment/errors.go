package extrapayment

import "errors"

var (
	ErrExtraPaymentNotFound = errors.New("extra payment not found")
	ErrAlreadySettled       = errors.New("extra payment has already been consumed by a settlement")
)
