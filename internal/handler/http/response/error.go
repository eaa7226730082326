package response

import (
	"errors"
	"net/http"

	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/auth"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/expense"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
	"github.com/soomspa/spa-backend-go/internal/domain/user"
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerAccessRequired), errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInUse):
		Conflict(w, "Employee is still referenced and cannot be deleted")
	case errors.Is(err, employee.ErrEmployeeAlreadyResigned):
		Conflict(w, "Employee has already resigned")
	case errors.Is(err, employee.ErrResignBeforeJoin):
		BadRequest(w, "Resignation date cannot be before the joining date", nil)
	case errors.Is(err, employee.ErrNotATherapist):
		BadRequest(w, "Employee is not a therapist", nil)

	// Course domain errors
	case errors.Is(err, course.ErrCourseNotFound):
		NotFound(w, "Course not found")
	case errors.Is(err, course.ErrCourseInUse):
		Conflict(w, "Course is referenced by sales and cannot be deleted")
	case errors.Is(err, course.ErrCourseInactive):
		BadRequest(w, "Course is not active", nil)

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrNoTherapists):
		BadRequest(w, "A sale requires at least one therapist", nil)
	case errors.Is(err, sale.ErrTherapistCountMismatch):
		BadRequest(w, "Therapist count does not match the course type", nil)
	case errors.Is(err, sale.ErrDuplicateTherapist):
		BadRequest(w, "The same therapist cannot appear twice on one sale", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this business day")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open attendance session to clock out", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out cannot be before clock-in", nil)

	// Extra payment domain errors
	case errors.Is(err, extrapayment.ErrExtraPaymentNotFound):
		NotFound(w, "Extra payment not found")
	case errors.Is(err, extrapayment.ErrAlreadySettled):
		Conflict(w, "Extra payment has already been consumed by a settlement")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrAlreadySettled):
		Conflict(w, "This period has already been settled for the employee")
	case errors.Is(err, settlement.ErrExtraPaymentsConsumed):
		Conflict(w, "One or more extra payments were already consumed by another settlement")
	case errors.Is(err, settlement.ErrInvalidPeriod):
		BadRequest(w, "period_end cannot be before period_start", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
