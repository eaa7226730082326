package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/dashboard"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// RevenueByMethod implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) RevenueByMethod(ctx context.Context, from, to time.Time) ([]dashboard.RevenueByMethod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pay_method, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM sales
		WHERE sold_at >= $1 AND sold_at < $2 + interval '1 day'
		GROUP BY pay_method
		ORDER BY pay_method
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by method: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RevenueByMethod
	for rows.Next() {
		var item dashboard.RevenueByMethod
		if err := rows.Scan(&item.PayMethod, &item.SaleCount, &item.Amount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RevenueByDay implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) RevenueByDay(ctx context.Context, from, to time.Time) ([]dashboard.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(sold_at::date, 'YYYY-MM-DD'), COUNT(*), COALESCE(SUM(total_price), 0)
		FROM sales
		WHERE sold_at >= $1 AND sold_at < $2 + interval '1 day'
		GROUP BY sold_at::date
		ORDER BY sold_at::date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by day: %w", err)
	}
	defer rows.Close()

	var result []dashboard.DailyRevenue
	for rows.Next() {
		var item dashboard.DailyRevenue
		if err := rows.Scan(&item.Date, &item.SaleCount, &item.Amount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RevenueByCourse implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) RevenueByCourse(ctx context.Context, from, to time.Time) ([]dashboard.CourseSales, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, COUNT(*), COALESCE(SUM(s.total_price), 0)
		FROM sales s
		JOIN courses c ON c.id = s.course_id
		WHERE s.sold_at >= $1 AND s.sold_at < $2 + interval '1 day'
		GROUP BY c.id, c.name
		ORDER BY SUM(s.total_price) DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by course: %w", err)
	}
	defer rows.Close()

	var result []dashboard.CourseSales
	for rows.Next() {
		var item dashboard.CourseSales
		if err := rows.Scan(&item.CourseID, &item.CourseName, &item.SaleCount, &item.Amount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TotalExpenses implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) TotalExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE spent_on >= $1 AND spent_on <= $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to total expenses: %w", err)
	}
	return total, nil
}

// TotalCommission implements dashboard.DashboardRepository. Choice fees are
// part of what therapists take home, so they count into the total.
func (r *dashboardRepositoryImpl) TotalCommission(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(st.commission_amount + st.choice_fee), 0)
		FROM sale_therapists st
		JOIN sales s ON s.id = st.sale_id
		WHERE s.sold_at >= $1 AND s.sold_at < $2 + interval '1 day'
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to total commission: %w", err)
	}
	return total, nil
}
