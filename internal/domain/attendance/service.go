package attendance

import (
	"context"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	// CloseAbandonedSessions clocks out sessions left open past their
	// business day's end. Returns how many it closed.
	CloseAbandonedSessions(ctx context.Context) (int, error)
}
