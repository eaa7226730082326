package sale

import "errors"

var (
	ErrSaleNotFound           = errors.New("sale not found")
	ErrNoTherapists           = errors.New("a sale requires at least one therapist")
	ErrTherapistCountMismatch = errors.New("therapist count does not match the course type")
	ErrDuplicateTherapist     = errors.New("the same therapist cannot appear twice on one sale")
)
