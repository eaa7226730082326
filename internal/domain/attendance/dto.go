package attendance

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest lets managers fix wrong clock times. WorkHours is
// rederived from the corrected pair.
type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in"`  // RFC3339
	ClockOut *string `json:"clock_out"` // RFC3339
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	WorkHours    *string `json:"work_hours,omitempty"`
	AutoClosed   bool    `json:"auto_closed"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		WorkDate:     a.WorkDate.Format("2006-01-02"),
		ClockIn:      a.ClockIn.Format("2006-01-02 15:04:05"),
		AutoClosed:   a.AutoClosed,
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format("2006-01-02 15:04:05")
		resp.ClockOut = &s
	}
	if a.WorkHours != nil {
		s := a.WorkHours.String()
		resp.WorkHours = &s
	}
	return resp
}
