package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one clock-in/clock-out pair per employee per business day.
// WorkDate is the business day the session belongs to, which starts at
// 06:00 shop-local rather than midnight. WorkHours is fixed at clock-out:
// minutes between the clocks divided by 60, rounded to 2 decimals.
type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	WorkHours  *decimal.Decimal
	AutoClosed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// IsOpen reports whether the session has not been clocked out yet.
func (a *Attendance) IsOpen() bool {
	return a.ClockOut == nil
}
