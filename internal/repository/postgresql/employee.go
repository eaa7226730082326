package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, phone_number, role, joined_at, resigned_at,
		base_salary, hourly_rate, meal_allowance, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.PhoneNumber, &e.Role, &e.JoinedAt, &e.ResignedAt,
		&e.BaseSalary, &e.HourlyRate, &e.MealAllowance,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, phone_number, role, joined_at, base_salary, hourly_rate, meal_allowance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Name, newEmployee.PhoneNumber, newEmployee.Role, newEmployee.JoinedAt,
		newEmployee.BaseSalary, newEmployee.HourlyRate, newEmployee.MealAllowance,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL`
	args := []any{}

	if filter.ActiveOnly {
		query += ` AND resigned_at IS NULL`
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		query += fmt.Sprintf(` AND role = $%d`, len(args))
	}
	query += ` ORDER BY joined_at, name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// ListByRole implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByRole(ctx context.Context, role employee.Role, activeOnly bool) ([]employee.Employee, error) {
	filter := employee.ListFilter{ActiveOnly: activeOnly, Role: &role}
	return r.List(ctx, filter)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, phone_number = $2, role = $3, resigned_at = $4,
			base_salary = $5, hourly_rate = $6, meal_allowance = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.Name, emp.PhoneNumber, emp.Role, emp.ResignedAt,
		emp.BaseSalary, emp.HourlyRate, emp.MealAllowance, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	referenced, err := r.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return employee.ErrEmployeeInUse
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// IsReferenced implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) IsReferenced(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (SELECT 1 FROM sale_therapists WHERE employee_id = $1)
			OR EXISTS (SELECT 1 FROM attendances WHERE employee_id = $1)
			OR EXISTS (SELECT 1 FROM settlements WHERE employee_id = $1)
			OR EXISTS (SELECT 1 FROM extra_payments WHERE employee_id = $1)
	`

	var referenced bool
	if err := q.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check employee references: %w", err)
	}
	return referenced, nil
}
