package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
)

// AttendanceJobs closes sessions whose business day has already rolled
// over without a clock-out.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_abandoned_sessions", 1*time.Hour, j.CloseAbandonedSessions)
}

func (j *AttendanceJobs) CloseAbandonedSessions(ctx context.Context) error {
	closed, err := j.attendanceService.CloseAbandonedSessions(ctx)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Cron: Auto-closed abandoned sessions", "count", closed)
	}
	return nil
}
