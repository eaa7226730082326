package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, e.name, a.work_date, a.clock_in, a.clock_out,
		a.work_hours, a.auto_closed, a.created_at, a.updated_at`

const attendanceFrom = ` FROM attendances a JOIN employees e ON e.id = a.employee_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.EmployeeName, &a.WorkDate, &a.ClockIn, &a.ClockOut,
		&a.WorkHours, &a.AutoClosed, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, work_date, clock_in)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, att.EmployeeID, att.WorkDate, att.ClockIn).Scan(&att.ID); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return r.GetByID(ctx, att.ID)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE a.employee_id = $1 AND a.work_date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return &a, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.clock_out IS NULL
		ORDER BY a.clock_in DESC
		LIMIT 1`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET work_date = $1, clock_in = $2, clock_out = $3, work_hours = $4, auto_closed = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.WorkDate, att.ClockIn, att.ClockOut, att.WorkHours, att.AutoClosed, att.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE true`
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(` AND a.employee_id = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND a.work_date >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND a.work_date <= $%d`, len(args))
	}
	query += ` ORDER BY a.work_date DESC, a.clock_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize implements attendance.AttendanceRepository. Open sessions carry
// no work hours yet and count toward neither figure.
func (r *attendanceRepositoryImpl) Summarize(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT work_date), COALESCE(SUM(work_hours), 0)
		FROM attendances
		WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3 AND work_hours IS NOT NULL
	`

	summary := attendance.Summary{EmployeeID: employeeID, TotalWorkHours: decimal.Zero}
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&summary.WorkedDays, &summary.TotalWorkHours); err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	return summary, nil
}

// ListOpenSessionsBefore implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.clock_out IS NULL AND a.clock_in < $1
		ORDER BY a.clock_in`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
