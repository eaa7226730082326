package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

// Create implements sale.SaleRepository.
func (r *saleRepositoryImpl) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	var created sale.Sale
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO sales (course_id, pay_method, total_price, sold_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, course_id, pay_method, total_price, sold_at, created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			newSale.CourseID, newSale.PayMethod, newSale.TotalPrice, newSale.SoldAt,
		).Scan(
			&created.ID, &created.CourseID, &created.PayMethod,
			&created.TotalPrice, &created.SoldAt, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		created.Therapists, err = r.insertTherapists(txCtx, created.ID, newSale.Therapists)
		return err
	})
	if err != nil {
		return sale.Sale{}, err
	}
	return r.GetByID(ctx, created.ID)
}

func (r *saleRepositoryImpl) insertTherapists(ctx context.Context, saleID string, therapists []sale.SaleTherapist) ([]sale.SaleTherapist, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sale_therapists (sale_id, employee_id, is_choice, commission_amount, choice_fee)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	inserted := make([]sale.SaleTherapist, 0, len(therapists))
	for _, t := range therapists {
		t.SaleID = saleID
		if err := q.QueryRow(ctx, query,
			saleID, t.EmployeeID, t.IsChoice, t.CommissionAmount, t.ChoiceFee,
		).Scan(&t.ID); err != nil {
			return nil, fmt.Errorf("failed to insert sale therapist: %w", err)
		}
		inserted = append(inserted, t)
	}
	return inserted, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.course_id, c.name, c.type, s.pay_method, s.total_price, s.sold_at,
			s.created_at, s.updated_at
		FROM sales s
		JOIN courses c ON c.id = s.course_id
		WHERE s.id = $1
	`

	var found sale.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.CourseID, &found.CourseName, &found.CourseType,
		&found.PayMethod, &found.TotalPrice, &found.SoldAt,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	therapistsBySale, err := r.loadTherapists(ctx, []string{found.ID})
	if err != nil {
		return sale.Sale{}, err
	}
	found.Therapists = therapistsBySale[found.ID]
	return found, nil
}

func (r *saleRepositoryImpl) loadTherapists(ctx context.Context, saleIDs []string) (map[string][]sale.SaleTherapist, error) {
	if len(saleIDs) == 0 {
		return map[string][]sale.SaleTherapist{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.sale_id, st.employee_id, e.name, st.is_choice, st.commission_amount, st.choice_fee
		FROM sale_therapists st
		JOIN employees e ON e.id = st.employee_id
		WHERE st.sale_id = ANY($1)
		ORDER BY st.id
	`

	rows, err := q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale therapists: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]sale.SaleTherapist)
	for rows.Next() {
		var t sale.SaleTherapist
		if err := rows.Scan(
			&t.ID, &t.SaleID, &t.EmployeeID, &t.EmployeeName,
			&t.IsChoice, &t.CommissionAmount, &t.ChoiceFee,
		); err != nil {
			return nil, err
		}
		result[t.SaleID] = append(result[t.SaleID], t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// List implements sale.SaleRepository.
func (r *saleRepositoryImpl) List(ctx context.Context, filter sale.ListSalesFilter) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.course_id, c.name, c.type, s.pay_method, s.total_price, s.sold_at,
			s.created_at, s.updated_at
		FROM sales s
		JOIN courses c ON c.id = s.course_id
		WHERE true
	`
	args := []any{}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND s.sold_at >= $%d::date`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND s.sold_at < $%d::date + interval '1 day'`, len(args))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		query += fmt.Sprintf(` AND s.course_id = $%d`, len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM sale_therapists st WHERE st.sale_id = s.id AND st.employee_id = $%d)`, len(args))
	}
	query += ` ORDER BY s.sold_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	var ids []string
	for rows.Next() {
		var item sale.Sale
		if err := rows.Scan(
			&item.ID, &item.CourseID, &item.CourseName, &item.CourseType,
			&item.PayMethod, &item.TotalPrice, &item.SoldAt,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sales = append(sales, item)
		ids = append(ids, item.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	therapistsBySale, err := r.loadTherapists(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Therapists = therapistsBySale[sales[i].ID]
	}
	return sales, nil
}

// Replace implements sale.SaleRepository.
func (r *saleRepositoryImpl) Replace(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE sales
			SET course_id = $1, pay_method = $2, total_price = $3, sold_at = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING id
		`
		var updatedID string
		err := q.QueryRow(ctx, query, s.CourseID, s.PayMethod, s.TotalPrice, s.SoldAt, s.ID).Scan(&updatedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return sale.ErrSaleNotFound
			}
			return fmt.Errorf("failed to update sale: %w", err)
		}

		if _, err := q.Exec(ctx, `DELETE FROM sale_therapists WHERE sale_id = $1`, s.ID); err != nil {
			return fmt.Errorf("failed to clear sale therapists: %w", err)
		}
		_, err = r.insertTherapists(txCtx, s.ID, s.Therapists)
		return err
	})
	if err != nil {
		return sale.Sale{}, err
	}
	return r.GetByID(ctx, s.ID)
}

// Delete implements sale.SaleRepository. Therapist rows go with the sale
// via the cascade.
func (r *saleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}
	return nil
}

// SumCommissions implements sale.SaleRepository. The bounds are shop-local
// midnights; to is the last included day.
func (r *saleRepositoryImpl) SumCommissions(ctx context.Context, employeeID string, from, to time.Time) (sale.CommissionSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(st.commission_amount), 0),
			COALESCE(SUM(st.choice_fee), 0),
			COUNT(*) FILTER (WHERE st.is_choice),
			COALESCE(SUM(s.total_price), 0)
		FROM sale_therapists st
		JOIN sales s ON s.id = st.sale_id
		WHERE st.employee_id = $1 AND s.sold_at >= $2 AND s.sold_at < $3 + interval '1 day'
	`

	summary := sale.CommissionSummary{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&summary.SaleCount, &summary.CommissionSum, &summary.ChoiceFeeSum,
		&summary.ChoiceCount, &summary.TotalSalePrice,
	)
	if err != nil {
		return sale.CommissionSummary{}, fmt.Errorf("failed to sum commissions: %w", err)
	}
	return summary, nil
}

// SumCommissionsForAll implements sale.SaleRepository.
func (r *saleRepositoryImpl) SumCommissionsForAll(ctx context.Context, from, to time.Time) ([]sale.CommissionSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.employee_id, COUNT(*),
			COALESCE(SUM(st.commission_amount), 0),
			COALESCE(SUM(st.choice_fee), 0),
			COUNT(*) FILTER (WHERE st.is_choice),
			COALESCE(SUM(s.total_price), 0)
		FROM sale_therapists st
		JOIN sales s ON s.id = st.sale_id
		WHERE s.sold_at >= $1 AND s.sold_at < $2 + interval '1 day'
		GROUP BY st.employee_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum commissions: %w", err)
	}
	defer rows.Close()

	var summaries []sale.CommissionSummary
	for rows.Next() {
		var summary sale.CommissionSummary
		if err := rows.Scan(
			&summary.EmployeeID, &summary.SaleCount, &summary.CommissionSum,
			&summary.ChoiceFeeSum, &summary.ChoiceCount, &summary.TotalSalePrice,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
