package employee

import (
	"context"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Resign(ctx context.Context, req ResignEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
