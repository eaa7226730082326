package settlement

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
)

// PeriodData carries everything the aggregation needs, pre-fetched by the
// caller. The aggregator itself reads nothing and mutates nothing.
type PeriodData struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Attendance    attendance.Summary
	Commission    sale.CommissionSummary
	ExtraPayments []extrapayment.ExtraPayment
}

// Result is the computed payout plus the extra payment ids the ledger must
// mark consumed when the settlement is confirmed.
type Result struct {
	Breakdown       settlement.Breakdown
	TotalAmount     decimal.Decimal
	ExtraPaymentIDs []string
}

// Aggregate reduces one employee's period data to a payout under the given
// compensation plan.
//
// CommissionPlan: base = commissions + choice fees.
// HourlyPlan:     base = rate x hours, plus meal allowance per worked day.
// SalariedPlan:   base = flat salary, not prorated by attendance.
// Every plan then adds bonuses and subtracts advances. A negative total is
// a debt carried forward and is returned as-is; nothing is clamped or
// rounded.
func Aggregate(plan settlement.Plan, data PeriodData) Result {
	breakdown := settlement.Breakdown{
		WorkedDays:       data.Attendance.WorkedDays,
		TotalWorkHours:   data.Attendance.TotalWorkHours,
		SaleCount:        data.Commission.SaleCount,
		BaseAmount:       decimal.Zero,
		CommissionAmount: decimal.Zero,
		ChoiceFeeAmount:  decimal.Zero,
		MealAllowance:    decimal.Zero,
		BonusAmount:      decimal.Zero,
		AdvanceAmount:    decimal.Zero,
	}

	switch p := plan.(type) {
	case settlement.CommissionPlan:
		breakdown.CommissionAmount = data.Commission.CommissionSum
		breakdown.ChoiceFeeAmount = data.Commission.ChoiceFeeSum
		breakdown.BaseAmount = breakdown.CommissionAmount.Add(breakdown.ChoiceFeeAmount)
	case settlement.HourlyPlan:
		breakdown.BaseAmount = p.HourlyRate.Mul(data.Attendance.TotalWorkHours)
		breakdown.MealAllowance = p.MealAllowance.Mul(decimal.NewFromInt(int64(data.Attendance.WorkedDays)))
	case settlement.SalariedPlan:
		breakdown.BaseAmount = p.BaseSalary
	}

	ids := make([]string, 0, len(data.ExtraPayments))
	for _, payment := range data.ExtraPayments {
		if payment.IsSettled {
			continue
		}
		switch payment.Type {
		case extrapayment.TypeBonus:
			breakdown.BonusAmount = breakdown.BonusAmount.Add(payment.Amount)
		case extrapayment.TypeAdvance:
			breakdown.AdvanceAmount = breakdown.AdvanceAmount.Add(payment.Amount)
		}
		ids = append(ids, payment.ID)
	}

	total := breakdown.BaseAmount.
		Add(breakdown.MealAllowance).
		Add(breakdown.BonusAmount).
		Sub(breakdown.AdvanceAmount)

	return Result{
		Breakdown:       breakdown,
		TotalAmount:     total,
		ExtraPaymentIDs: ids,
	}
}
