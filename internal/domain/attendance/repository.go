package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the per-employee attendance aggregate over a period, consumed
// by the settlement aggregator.
type Summary struct {
	EmployeeID     string
	WorkedDays     int
	TotalWorkHours decimal.Decimal
}

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate finds the attendance row for one business day,
	// used to prevent double clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Attendance, error)

	// GetOpenSession returns the employee's most recent row without a
	// clock-out.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// Summarize aggregates worked days and summed work hours for one
	// employee over [from, to] (business-date inclusive).
	Summarize(ctx context.Context, employeeID string, from, to time.Time) (Summary, error)

	// ListOpenSessionsBefore returns open sessions whose business day ended
	// before the cutoff; the auto clock-out job closes them.
	ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}

type ListFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
}
