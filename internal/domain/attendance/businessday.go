package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDayStartHour is the hour (shop-local) at which a business day
// begins. A clock-in at 05:59 belongs to the previous calendar day.
const DefaultDayStartHour = 6

// BusinessDay maps an instant to the business day it belongs to, as a
// midnight-truncated date in loc.
func BusinessDay(t time.Time, loc *time.Location, dayStartHour int) time.Time {
	local := t.In(loc)
	shifted := local.Add(-time.Duration(dayStartHour) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, loc)
}

// BusinessDayEnd returns the instant the given business day rolls over,
// i.e. dayStartHour on the following calendar day.
func BusinessDayEnd(workDate time.Time, loc *time.Location, dayStartHour int) time.Time {
	return time.Date(workDate.Year(), workDate.Month(), workDate.Day(), dayStartHour, 0, 0, 0, loc).
		AddDate(0, 0, 1)
}

// WorkHours converts a clock-in/clock-out pair to hours, rounded to two
// decimal places.
func WorkHours(clockIn, clockOut time.Time) decimal.Decimal {
	minutes := clockOut.Sub(clockIn).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}
