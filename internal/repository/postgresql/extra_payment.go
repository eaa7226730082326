package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type extraPaymentRepositoryImpl struct {
	db *database.DB
}

func NewExtraPaymentRepository(db *database.DB) extrapayment.ExtraPaymentRepository {
	return &extraPaymentRepositoryImpl{db: db}
}

const extraPaymentColumns = `p.id, p.employee_id, e.name, p.type, p.amount, p.paid_on,
		p.memo, p.is_settled, p.created_at, p.updated_at`

const extraPaymentFrom = ` FROM extra_payments p JOIN employees e ON e.id = p.employee_id`

func scanExtraPayment(row pgx.Row) (extrapayment.ExtraPayment, error) {
	var p extrapayment.ExtraPayment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Type, &p.Amount, &p.PaidOn,
		&p.Memo, &p.IsSettled, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements extrapayment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) Create(ctx context.Context, payment extrapayment.ExtraPayment) (extrapayment.ExtraPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_payments (employee_id, type, amount, paid_on, memo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query,
		payment.EmployeeID, payment.Type, payment.Amount, payment.PaidOn, payment.Memo,
	).Scan(&payment.ID); err != nil {
		return extrapayment.ExtraPayment{}, fmt.Errorf("failed to create extra payment: %w", err)
	}
	return r.GetByID(ctx, payment.ID)
}

// GetByID implements extrapayment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (extrapayment.ExtraPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + extraPaymentColumns + extraPaymentFrom + ` WHERE p.id = $1`

	p, err := scanExtraPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return extrapayment.ExtraPayment{}, extrapayment.ErrExtraPaymentNotFound
		}
		return extrapayment.ExtraPayment{}, fmt.Errorf("failed to get extra payment: %w", err)
	}
	return p, nil
}

// List implements extrapayment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) List(ctx context.Context, filter extrapayment.ListFilter) ([]extrapayment.ExtraPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + extraPaymentColumns + extraPaymentFrom + ` WHERE true`
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(` AND p.employee_id = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND p.paid_on >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND p.paid_on <= $%d`, len(args))
	}
	if filter.UnsettledOnly {
		query += ` AND NOT p.is_settled`
	}
	query += ` ORDER BY p.paid_on DESC, p.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra payments: %w", err)
	}
	defer rows.Close()

	var payments []extrapayment.ExtraPayment
	for rows.Next() {
		p, err := scanExtraPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

// ListUnsettled implements extrapayment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) ListUnsettled(ctx context.Context, employeeID string, from, to time.Time) ([]extrapayment.ExtraPayment, error) {
	return r.List(ctx, extrapayment.ListFilter{
		EmployeeID:    &employeeID,
		From:          &from,
		To:            &to,
		UnsettledOnly: true,
	})
}

// Delete implements extrapayment.ExtraPaymentRepository.
func (r *extraPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var isSettled bool
	err := q.QueryRow(ctx, `SELECT is_settled FROM extra_payments WHERE id = $1`, id).Scan(&isSettled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return extrapayment.ErrExtraPaymentNotFound
		}
		return fmt.Errorf("failed to check extra payment: %w", err)
	}
	if isSettled {
		return extrapayment.ErrAlreadySettled
	}

	// The settled guard repeats in SQL so a concurrent settlement cannot
	// slip between the check and the delete.
	tag, err := q.Exec(ctx, `DELETE FROM extra_payments WHERE id = $1 AND NOT is_settled`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return extrapayment.ErrAlreadySettled
	}
	return nil
}
