package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeInUse           = errors.New("employee is referenced by sales, attendance or settlements and cannot be deleted")
	ErrEmployeeAlreadyResigned = errors.New("employee has already resigned")
	ErrResignBeforeJoin        = errors.New("resigned_at cannot be before joined_at")
	ErrNotATherapist           = errors.New("employee is not a therapist")
)
