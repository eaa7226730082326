package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCommission_Single(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		duration int
		want     int64
	}{
		{"standard price", 50000, 60, 5000},
		{"price not divisible by ten", 49999, 60, 4999},
		{"duration is irrelevant for single", 50000, 120, 5000},
		{"small price floors to zero", 9, 30, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateCommission(CommissionInput{
				CourseType:      course.TypeSingle,
				DurationMinutes: c.duration,
				TotalPrice:      decimal.NewFromInt(c.price),
			})
			assert.True(t, got.CommissionAmount.Equal(decimal.NewFromInt(c.want)),
				"commission = %s, want %d", got.CommissionAmount, c.want)
			assert.True(t, got.ChoiceFee.IsZero())
		})
	}
}

func TestCalculateCommission_DoubleTiers(t *testing.T) {
	cases := []struct {
		duration int
		want     int64
	}{
		{30, 6000},
		{60, 6000},
		{61, 8000},
		{70, 8000},
		{80, 8000},
		{81, 8000},  // no higher tier exists
		{120, 8000}, // stays capped
	}

	for _, c := range cases {
		got := CalculateCommission(CommissionInput{
			CourseType:      course.TypeDouble,
			DurationMinutes: c.duration,
			TotalPrice:      decimal.NewFromInt(160000),
		})
		assert.True(t, got.CommissionAmount.Equal(decimal.NewFromInt(c.want)),
			"duration %d: commission = %s, want %d", c.duration, got.CommissionAmount, c.want)
	}
}

func TestCalculateCommission_ChoiceFee(t *testing.T) {
	// The choice fee is a flat 2000 regardless of course type, reported
	// separately from the commission.
	single := CalculateCommission(CommissionInput{
		CourseType:      course.TypeSingle,
		DurationMinutes: 60,
		TotalPrice:      decimal.NewFromInt(50000),
		IsChoice:        true,
	})
	assert.True(t, single.CommissionAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, single.ChoiceFee.Equal(decimal.NewFromInt(2000)))

	double := CalculateCommission(CommissionInput{
		CourseType:      course.TypeDouble,
		DurationMinutes: 70,
		TotalPrice:      decimal.NewFromInt(160000),
		IsChoice:        true,
	})
	assert.True(t, double.CommissionAmount.Equal(decimal.NewFromInt(8000)))
	assert.True(t, double.ChoiceFee.Equal(decimal.NewFromInt(2000)))
}

func TestCalculateCommission_DoublePaidPerTherapist(t *testing.T) {
	// Both therapists of a 70-minute double get the full 8000; the chosen
	// one earns 2000 on top.
	chosen := CalculateCommission(CommissionInput{
		CourseType:      course.TypeDouble,
		DurationMinutes: 70,
		TotalPrice:      decimal.NewFromInt(160000),
		IsChoice:        true,
	})
	other := CalculateCommission(CommissionInput{
		CourseType:      course.TypeDouble,
		DurationMinutes: 70,
		TotalPrice:      decimal.NewFromInt(160000),
		IsChoice:        false,
	})

	assert.True(t, chosen.CommissionAmount.Add(chosen.ChoiceFee).Equal(decimal.NewFromInt(10000)))
	assert.True(t, other.CommissionAmount.Add(other.ChoiceFee).Equal(decimal.NewFromInt(8000)))
}

func TestCalculateCommission_Deterministic(t *testing.T) {
	// Editing a sale recomputes commissions; the result must not drift.
	in := CommissionInput{
		CourseType:      course.TypeSingle,
		DurationMinutes: 90,
		TotalPrice:      decimal.NewFromInt(77777),
		IsChoice:        true,
	}
	first := CalculateCommission(in)
	for i := 0; i < 10; i++ {
		again := CalculateCommission(in)
		assert.True(t, first.CommissionAmount.Equal(again.CommissionAmount))
		assert.True(t, first.ChoiceFee.Equal(again.ChoiceFee))
	}
}
