package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	ListByRole(ctx context.Context, role Role, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// SoftDelete marks the employee deleted. It must fail with
	// ErrEmployeeInUse while sales, attendances or settlements still
	// reference the employee.
	SoftDelete(ctx context.Context, id string) error

	// IsReferenced reports whether any sale, attendance or settlement row
	// points at the employee.
	IsReferenced(ctx context.Context, id string) (bool, error)
}
