package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	dayStartHour   int

	// now is swappable for tests.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	dayStartHour int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		dayStartHour:   dayStartHour,
		now:            time.Now,
	}
}

// ClockIn implements attendance.AttendanceService. At most one session per
// employee per business day; a 05:59 clock-in lands on the previous day.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now()
	workDate := attendance.BusinessDay(now, s.loc, s.dayStartHour)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, workDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		WorkDate:   workDate,
		ClockIn:    now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}
	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. It closes the open
// session and fixes the work hours at that moment.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find open session: %w", err)
	}

	now := s.now()
	if now.Before(open.ClockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeIn
	}

	hours := attendance.WorkHours(open.ClockIn, now)
	open.ClockOut = &now
	open.WorkHours = &hours

	if err := s.attendanceRepo.Update(ctx, open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}
	return attendance.ToResponse(open), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance.ToResponse(found), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

// Update implements attendance.AttendanceService. Corrections rederive the
// business day from the new clock-in, and work hours from the pair. A
// corrected row sheds its auto-closed mark.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	current, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.ClockIn != nil {
		clockIn, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid clock_in: %w", err)
		}
		current.ClockIn = clockIn
		current.WorkDate = attendance.BusinessDay(clockIn, s.loc, s.dayStartHour)
	}
	if req.ClockOut != nil {
		clockOut, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid clock_out: %w", err)
		}
		current.ClockOut = &clockOut
	}

	if current.ClockOut != nil {
		if current.ClockOut.Before(current.ClockIn) {
			return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeIn
		}
		hours := attendance.WorkHours(current.ClockIn, *current.ClockOut)
		current.WorkHours = &hours
		current.AutoClosed = false
	}

	if err := s.attendanceRepo.Update(ctx, current); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return attendance.ToResponse(current), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// CloseAbandonedSessions clocks out every session whose business day has
// rolled over, stamping the business day's end as the clock-out. The cron
// scheduler calls this shortly after the daily rollover.
func (s *AttendanceServiceImpl) CloseAbandonedSessions(ctx context.Context) (int, error) {
	now := s.now()
	open, err := s.attendanceRepo.ListOpenSessionsBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list open sessions: %w", err)
	}

	closed := 0
	for _, session := range open {
		end := attendance.BusinessDayEnd(session.WorkDate, s.loc, s.dayStartHour)
		if end.After(now) {
			continue
		}
		hours := attendance.WorkHours(session.ClockIn, end)
		session.ClockOut = &end
		session.WorkHours = &hours
		session.AutoClosed = true
		if err := s.attendanceRepo.Update(ctx, session); err != nil {
			return closed, fmt.Errorf("failed to auto-close session %s: %w", session.ID, err)
		}
		closed++
	}
	return closed, nil
}
