package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinedAt, err := employee.ParseDate(req.JoinedAt)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid joined_at: %w", err)
	}

	newEmployee := employee.Employee{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Role:        employee.Role(req.Role),
		JoinedAt:    joinedAt,
	}
	if newEmployee.BaseSalary, err = parseAmountPtr(req.BaseSalary); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if newEmployee.HourlyRate, err = parseAmountPtr(req.HourlyRate); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if newEmployee.MealAllowance, err = parseAmountPtr(req.MealAllowance); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Only the fields present in
// the request change; compensation parameters for roles that do not use
// them are kept as-is rather than cleared.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		current.PhoneNumber = req.PhoneNumber
	}
	if req.Role != nil {
		current.Role = employee.Role(*req.Role)
	}
	if req.BaseSalary != nil {
		if current.BaseSalary, err = parseAmountPtr(req.BaseSalary); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.HourlyRate != nil {
		if current.HourlyRate, err = parseAmountPtr(req.HourlyRate); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.MealAllowance != nil {
		if current.MealAllowance, err = parseAmountPtr(req.MealAllowance); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}
	return employee.ToResponse(updated), nil
}

// Resign implements employee.EmployeeService. A resigned employee stops
// appearing in active listings but keeps all history, so past periods can
// still be settled.
func (s *EmployeeServiceImpl) Resign(ctx context.Context, req employee.ResignEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	resignedAt, err := employee.ParseDate(req.ResignedAt)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid resigned_at: %w", err)
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if current.ResignedAt != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyResigned
	}
	if current.JoinedAt.After(resignedAt) {
		return employee.EmployeeResponse{}, employee.ErrResignBeforeJoin
	}

	current.ResignedAt = &resignedAt
	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resign employee: %w", err)
	}
	return employee.ToResponse(current), nil
}

// Delete implements employee.EmployeeService. Removal is a soft delete and
// only possible while nothing references the employee.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrEmployeeInUse) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func parseAmountPtr(value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	amount, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", *value, err)
	}
	return &amount, nil
}
