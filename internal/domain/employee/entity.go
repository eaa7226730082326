package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOwner     Role = "OWNER"
	RoleManager   Role = "MANAGER"
	RoleTherapist Role = "THERAPIST"
	RoleStaff     Role = "STAFF"
)

func ValidRoles() []string {
	return []string{string(RoleOwner), string(RoleManager), string(RoleTherapist), string(RoleStaff)}
}

type Employee struct {
	ID          string
	Name        string
	PhoneNumber *string
	Role        Role
	JoinedAt    time.Time
	ResignedAt  *time.Time

	// Compensation parameters. Which ones apply depends on the role:
	// OWNER/MANAGER use BaseSalary, STAFF uses HourlyRate + MealAllowance,
	// THERAPIST is paid purely by commission.
	BaseSalary    *decimal.Decimal
	HourlyRate    *decimal.Decimal
	MealAllowance *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive reports whether the employee is currently employed.
func (e *Employee) IsActive() bool {
	return e.ResignedAt == nil && e.DeletedAt == nil
}

// IsCommissionPaid reports whether the employee earns per-service commission.
func (e *Employee) IsCommissionPaid() bool {
	return e.Role == RoleTherapist
}
