package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	loc           *time.Location
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo, loc: loc}
}

// Summary implements dashboard.DashboardService. Revenue and sale counts
// come from the by-method slices so the headline figures and the breakdown
// can never disagree.
func (s *DashboardServiceImpl) Summary(ctx context.Context, req dashboard.SummaryRequest) (dashboard.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	from, err := time.ParseInLocation("2006-01-02", req.From, s.loc)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("invalid from: %w", err)
	}
	to, err := time.ParseInLocation("2006-01-02", req.To, s.loc)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("invalid to: %w", err)
	}

	byMethod, err := s.dashboardRepo.RevenueByMethod(ctx, from, to)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to aggregate revenue by method: %w", err)
	}
	byDay, err := s.dashboardRepo.RevenueByDay(ctx, from, to)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to aggregate revenue by day: %w", err)
	}
	byCourse, err := s.dashboardRepo.RevenueByCourse(ctx, from, to)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to aggregate revenue by course: %w", err)
	}
	totalExpenses, err := s.dashboardRepo.TotalExpenses(ctx, from, to)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to total expenses: %w", err)
	}
	totalCommission, err := s.dashboardRepo.TotalCommission(ctx, from, to)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to total commission: %w", err)
	}

	summary := dashboard.Summary{
		TotalRevenue:    decimal.Zero,
		TotalExpenses:   totalExpenses,
		TotalCommission: totalCommission,
		SaleCount:       0,
		ByMethod:        byMethod,
		ByDay:           byDay,
		ByCourse:        byCourse,
	}
	for _, m := range byMethod {
		summary.TotalRevenue = summary.TotalRevenue.Add(m.Amount)
		summary.SaleCount += m.SaleCount
	}
	summary.NetAmount = summary.TotalRevenue.Sub(totalExpenses).Sub(totalCommission)

	return dashboard.ToResponse(summary), nil
}
