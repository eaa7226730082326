package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("already clocked in for this business day")
	ErrNotClockedIn       = errors.New("no open attendance session to clock out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrClockOutBeforeIn   = errors.New("clock-out cannot be before clock-in")
)
