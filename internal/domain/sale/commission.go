package sale

import (
	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
)

var (
	singleCommissionRate = decimal.NewFromFloat(0.10)

	// Flat per-therapist commission for DOUBLE courses by duration tier.
	// Durations past 80 minutes stay at the 80-minute amount.
	doubleTierShort = decimal.NewFromInt(6000)
	doubleTierLong  = decimal.NewFromInt(8000)

	choiceFee = decimal.NewFromInt(2000)
)

// CommissionInput describes one therapist's share of one sale.
type CommissionInput struct {
	CourseType      course.Type
	DurationMinutes int
	TotalPrice      decimal.Decimal
	IsChoice        bool
}

// CommissionResult is the per-therapist outcome. ChoiceFee is reported
// separately from the commission so settlement can break the two out.
type CommissionResult struct {
	CommissionAmount decimal.Decimal
	ChoiceFee        decimal.Decimal
}

// CalculateCommission computes a single therapist's commission for a sale.
//
// SINGLE courses pay floor(totalPrice * 0.10) regardless of duration.
// DOUBLE courses pay a flat amount per duration tier, and every
// participating therapist receives the full tier amount; nothing is split.
// A customer's explicit choice of therapist adds a flat fee on top,
// independent of the tier.
func CalculateCommission(in CommissionInput) CommissionResult {
	var commission decimal.Decimal

	switch in.CourseType {
	case course.TypeDouble:
		if in.DurationMinutes <= 60 {
			commission = doubleTierShort
		} else {
			commission = doubleTierLong
		}
	default:
		commission = in.TotalPrice.Mul(singleCommissionRate).Floor()
	}

	result := CommissionResult{
		CommissionAmount: commission,
		ChoiceFee:        decimal.Zero,
	}
	if in.IsChoice {
		result.ChoiceFee = choiceFee
	}
	return result
}
