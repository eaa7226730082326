package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func period() (time.Time, time.Time) {
	loc, _ := time.LoadLocation("Asia/Seoul")
	return time.Date(2026, 8, 1, 0, 0, 0, 0, loc), time.Date(2026, 8, 31, 0, 0, 0, 0, loc)
}

func TestAggregate_CommissionPlan(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.CommissionPlan{}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Attendance:  attendance.Summary{WorkedDays: 22, TotalWorkHours: decimal.RequireFromString("180.5")},
		Commission: sale.CommissionSummary{
			SaleCount:     41,
			CommissionSum: d(328000),
			ChoiceFeeSum:  d(14000),
			ChoiceCount:   7,
		},
	})

	assert.True(t, result.Breakdown.CommissionAmount.Equal(d(328000)))
	assert.True(t, result.Breakdown.ChoiceFeeAmount.Equal(d(14000)))
	assert.True(t, result.Breakdown.BaseAmount.Equal(d(342000)))
	assert.True(t, result.Breakdown.MealAllowance.IsZero())
	assert.True(t, result.TotalAmount.Equal(d(342000)))
	assert.Equal(t, 41, result.Breakdown.SaleCount)
	assert.Equal(t, 22, result.Breakdown.WorkedDays)
	assert.Empty(t, result.ExtraPaymentIDs)
}

func TestAggregate_HourlyPlan(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.HourlyPlan{
		HourlyRate:    d(10000),
		MealAllowance: d(5000),
	}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Attendance:  attendance.Summary{WorkedDays: 20, TotalWorkHours: d(160)},
		ExtraPayments: []extrapayment.ExtraPayment{
			{ID: "ep-1", Type: extrapayment.TypeAdvance, Amount: d(50000)},
		},
	})

	// 160h x 10000 + 20 days x 5000 - 50000 advance
	assert.True(t, result.Breakdown.BaseAmount.Equal(d(1600000)))
	assert.True(t, result.Breakdown.MealAllowance.Equal(d(100000)))
	assert.True(t, result.Breakdown.AdvanceAmount.Equal(d(50000)))
	assert.True(t, result.TotalAmount.Equal(d(1650000)), "got %s", result.TotalAmount)
	assert.Equal(t, []string{"ep-1"}, result.ExtraPaymentIDs)
}

func TestAggregate_HourlyPlanFractionalHours(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.HourlyPlan{
		HourlyRate:    d(10000),
		MealAllowance: d(5000),
	}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Attendance:  attendance.Summary{WorkedDays: 1, TotalWorkHours: decimal.RequireFromString("7.42")},
	})

	// The fractional product is carried exactly, never rounded.
	assert.True(t, result.Breakdown.BaseAmount.Equal(d(74200)))
	assert.True(t, result.TotalAmount.Equal(d(79200)))
}

func TestAggregate_SalariedPlanNotProrated(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.SalariedPlan{BaseSalary: d(3000000)}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Attendance:  attendance.Summary{WorkedDays: 3, TotalWorkHours: d(24)},
	})

	assert.True(t, result.Breakdown.BaseAmount.Equal(d(3000000)))
	assert.True(t, result.Breakdown.MealAllowance.IsZero())
	assert.True(t, result.TotalAmount.Equal(d(3000000)))
}

func TestAggregate_BonusAndAdvance(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.CommissionPlan{}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Commission:  sale.CommissionSummary{SaleCount: 2, CommissionSum: d(20000)},
		ExtraPayments: []extrapayment.ExtraPayment{
			{ID: "ep-bonus", Type: extrapayment.TypeBonus, Amount: d(30000)},
			{ID: "ep-adv", Type: extrapayment.TypeAdvance, Amount: d(10000)},
		},
	})

	assert.True(t, result.Breakdown.BonusAmount.Equal(d(30000)))
	assert.True(t, result.Breakdown.AdvanceAmount.Equal(d(10000)))
	assert.True(t, result.TotalAmount.Equal(d(40000)))
	assert.Equal(t, []string{"ep-bonus", "ep-adv"}, result.ExtraPaymentIDs)
}

func TestAggregate_NegativeTotalPreserved(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.CommissionPlan{}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		Commission:  sale.CommissionSummary{SaleCount: 1, CommissionSum: d(8000)},
		ExtraPayments: []extrapayment.ExtraPayment{
			{ID: "ep-adv", Type: extrapayment.TypeAdvance, Amount: d(50000)},
		},
	})

	assert.True(t, result.TotalAmount.Equal(d(-42000)), "debt must carry forward, got %s", result.TotalAmount)
}

func TestAggregate_SkipsAlreadySettledPayments(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.CommissionPlan{}, PeriodData{
		PeriodStart: start,
		PeriodEnd:   end,
		ExtraPayments: []extrapayment.ExtraPayment{
			{ID: "ep-old", Type: extrapayment.TypeBonus, Amount: d(99999), IsSettled: true},
			{ID: "ep-new", Type: extrapayment.TypeBonus, Amount: d(10000)},
		},
	})

	assert.True(t, result.Breakdown.BonusAmount.Equal(d(10000)))
	assert.Equal(t, []string{"ep-new"}, result.ExtraPaymentIDs)
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	start, end := period()
	result := Aggregate(settlement.CommissionPlan{}, PeriodData{PeriodStart: start, PeriodEnd: end})

	require.NotNil(t, result.ExtraPaymentIDs)
	assert.True(t, result.TotalAmount.IsZero())
	assert.Equal(t, 0, result.Breakdown.SaleCount)
}
