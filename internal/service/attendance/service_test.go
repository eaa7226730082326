package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.NewString()
	f.records[att.ID] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.EmployeeID == employeeID && a.WorkDate.Equal(workDate) {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	for _, a := range f.records {
		if a.EmployeeID == employeeID && a.IsOpen() {
			return *a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = &att
	return nil
}

func (f *fakeAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.IsOpen() && a.ClockIn.Before(cutoff) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func newTestService(t *testing.T, now time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo, string) {
	t.Helper()
	loc := seoul(t)

	empID := uuid.NewString()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		empID: {ID: empID, Name: "Mina", Role: employee.RoleStaff},
	}}
	attendances := newFakeAttendanceRepo()

	svc := NewAttendanceService(attendances, employees, loc, attendance.DefaultDayStartHour).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, attendances, empID
}

func TestClockInBeforeDayStartLandsOnPreviousDay(t *testing.T) {
	loc := seoul(t)
	// 05:59 local is still the previous business day.
	now := time.Date(2026, 3, 10, 5, 59, 0, 0, loc)
	svc, _, empID := newTestService(t, now)

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", resp.WorkDate)
}

func TestClockInTwiceSameBusinessDay(t *testing.T) {
	loc := seoul(t)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	svc, _, empID := newTestService(t, now)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInUnknownEmployee(t *testing.T) {
	loc := seoul(t)
	svc, _, _ := newTestService(t, time.Date(2026, 3, 10, 10, 0, 0, 0, loc))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: uuid.NewString()})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOutFixesWorkHours(t *testing.T) {
	loc := seoul(t)
	in := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	svc, _, empID := newTestService(t, in)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	// 7h27m later: 447 minutes / 60 = 7.45.
	svc.now = func() time.Time { return in.Add(7*time.Hour + 27*time.Minute) }
	resp, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: empID})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, "7.45", *resp.WorkHours)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	loc := seoul(t)
	svc, _, empID := newTestService(t, time.Date(2026, 3, 10, 10, 0, 0, 0, loc))

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: empID})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestCloseAbandonedSessions(t *testing.T) {
	loc := seoul(t)
	in := time.Date(2026, 3, 10, 22, 0, 0, 0, loc)
	svc, repo, empID := newTestService(t, in)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	// The next business day has started: the session gets closed at the
	// 06:00 rollover, 8 hours after clock-in.
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 7, 0, 0, 0, loc) }
	closed, err := svc.CloseAbandonedSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	var session attendance.Attendance
	for _, a := range repo.records {
		session = *a
	}
	require.NotNil(t, session.ClockOut)
	assert.True(t, session.AutoClosed)
	assert.True(t, session.ClockOut.Equal(time.Date(2026, 3, 11, 6, 0, 0, 0, loc)))
	require.NotNil(t, session.WorkHours)
	assert.Equal(t, "8", session.WorkHours.String())
}

func TestCloseAbandonedSessionsLeavesCurrentDayOpen(t *testing.T) {
	loc := seoul(t)
	in := time.Date(2026, 3, 10, 22, 0, 0, 0, loc)
	svc, _, empID := newTestService(t, in)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	// Still the same business day; nothing to close.
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 2, 0, 0, 0, loc) }
	closed, err := svc.CloseAbandonedSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestUpdateRederivesBusinessDayAndHours(t *testing.T) {
	loc := seoul(t)
	in := time.Date(2026, 3, 10, 22, 0, 0, 0, loc)
	svc, repo, empID := newTestService(t, in)

	created, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	// Mark it auto-closed so the correction can clear the flag.
	rec := repo.records[created.ID]
	rec.AutoClosed = true

	newIn := time.Date(2026, 3, 11, 1, 0, 0, 0, loc).Format(time.RFC3339)
	newOut := time.Date(2026, 3, 11, 4, 30, 0, 0, loc).Format(time.RFC3339)
	resp, err := svc.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID:       created.ID,
		ClockIn:  &newIn,
		ClockOut: &newOut,
	})
	require.NoError(t, err)

	// 01:00 is before the 06:00 rollover, so the session still belongs to
	// March 10.
	assert.Equal(t, "2026-03-10", resp.WorkDate)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, "3.5", *resp.WorkHours)
	assert.False(t, resp.AutoClosed)
}

func TestUpdateRejectsClockOutBeforeIn(t *testing.T) {
	loc := seoul(t)
	in := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	svc, _, empID := newTestService(t, in)

	created, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: empID})
	require.NoError(t, err)

	newOut := in.Add(-time.Hour).Format(time.RFC3339)
	_, err = svc.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID:       created.ID,
		ClockOut: &newOut,
	})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeIn)
}
