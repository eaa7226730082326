package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDay_Boundary(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "05:59 belongs to the previous day",
			at:   time.Date(2025, 3, 10, 5, 59, 0, 0, loc),
			want: "2025-03-09",
		},
		{
			name: "06:00 starts the new day",
			at:   time.Date(2025, 3, 10, 6, 0, 0, 0, loc),
			want: "2025-03-10",
		},
		{
			name: "06:01 belongs to the current day",
			at:   time.Date(2025, 3, 10, 6, 1, 0, 0, loc),
			want: "2025-03-10",
		},
		{
			name: "late evening stays on the same day",
			at:   time.Date(2025, 3, 10, 23, 30, 0, 0, loc),
			want: "2025-03-10",
		},
		{
			name: "01:00 after midnight is still the previous business day",
			at:   time.Date(2025, 3, 11, 1, 0, 0, 0, loc),
			want: "2025-03-10",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BusinessDay(c.at, loc, DefaultDayStartHour)
			assert.Equal(t, c.want, got.Format("2006-01-02"))
		})
	}
}

func TestBusinessDay_UTCInputConverted(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 20:59 UTC = 05:59 KST next calendar day, so the business day is the
	// UTC calendar day.
	at := time.Date(2025, 3, 9, 20, 59, 0, 0, time.UTC)
	got := BusinessDay(at, loc, DefaultDayStartHour)
	assert.Equal(t, "2025-03-09", got.Format("2006-01-02"))
}

func TestBusinessDayEnd(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	workDate := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	end := BusinessDayEnd(workDate, loc, DefaultDayStartHour)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, loc), end)
}

func TestWorkHours_Rounding(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		minutes int
		want    string
	}{
		{510, "8.5"},
		{445, "7.42"}, // 7.4166... rounds to 7.42
		{1, "0.02"},   // 0.0166... rounds to 0.02
		{0, "0"},
		{481, "8.02"},
	}

	for _, c := range cases {
		got := WorkHours(base, base.Add(time.Duration(c.minutes)*time.Minute))
		want, err := decimal.NewFromString(c.want)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "minutes %d: got %s, want %s", c.minutes, got, want)
	}
}
