package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	RevenueByMethod(ctx context.Context, from, to time.Time) ([]RevenueByMethod, error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]DailyRevenue, error)
	RevenueByCourse(ctx context.Context, from, to time.Time) ([]CourseSales, error)
	TotalExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	TotalCommission(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
