package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
)

// Plan is the compensation formula attached to an employee. Each variant
// carries exactly the parameters its formula needs, so the aggregator
// dispatches on the type instead of comparing role strings.
type Plan interface {
	isPlan()
}

// CommissionPlan pays per-service commission plus choice fees (therapists).
type CommissionPlan struct{}

// HourlyPlan pays hourlyRate x work hours plus a per-worked-day meal
// allowance (hourly staff).
type HourlyPlan struct {
	HourlyRate    decimal.Decimal
	MealAllowance decimal.Decimal
}

// SalariedPlan pays the base salary flat, regardless of attendance
// (owner/manager).
type SalariedPlan struct {
	BaseSalary decimal.Decimal
}

func (CommissionPlan) isPlan() {}
func (HourlyPlan) isPlan()     {}
func (SalariedPlan) isPlan()   {}

// PlanFor derives the compensation plan from an employee's role and
// parameters. Missing optional parameters default to zero rather than
// failing: a staff member without a recorded meal allowance simply gets
// none.
func PlanFor(emp employee.Employee) (Plan, error) {
	switch emp.Role {
	case employee.RoleTherapist:
		return CommissionPlan{}, nil
	case employee.RoleStaff:
		plan := HourlyPlan{}
		if emp.HourlyRate != nil {
			plan.HourlyRate = *emp.HourlyRate
		}
		if emp.MealAllowance != nil {
			plan.MealAllowance = *emp.MealAllowance
		}
		return plan, nil
	case employee.RoleOwner, employee.RoleManager:
		plan := SalariedPlan{}
		if emp.BaseSalary != nil {
			plan.BaseSalary = *emp.BaseSalary
		}
		return plan, nil
	default:
		return nil, fmt.Errorf("no compensation plan for role %q", emp.Role)
	}
}
