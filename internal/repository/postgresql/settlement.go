package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type settlementRepositoryImpl struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepositoryImpl{db: db}
}

const uniqueViolationCode = "23505"

// Confirm implements settlement.SettlementRepository. The transaction takes
// a per-employee advisory lock first, so two concurrent confirms for the
// same employee serialize; the partial unique index on live settlements is
// the backstop for exact duplicates.
func (r *settlementRepositoryImpl) Confirm(ctx context.Context, s settlement.Settlement, extraPaymentIDs []string) (settlement.Settlement, error) {
	var confirmed settlement.Settlement
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.EmployeeID+":"+string(s.Type)); err != nil {
			return fmt.Errorf("failed to take settlement lock: %w", err)
		}

		var overlapping bool
		overlapQuery := `
			SELECT EXISTS (
				SELECT 1 FROM settlements
				WHERE employee_id = $1 AND type = $2 AND deleted_at IS NULL
					AND period_start <= $4 AND period_end >= $3
			)
		`
		if err := q.QueryRow(ctx, overlapQuery, s.EmployeeID, s.Type, s.PeriodStart, s.PeriodEnd).Scan(&overlapping); err != nil {
			return fmt.Errorf("failed to check overlapping settlements: %w", err)
		}
		if overlapping {
			return settlement.ErrAlreadySettled
		}

		details, err := json.Marshal(s.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal settlement details: %w", err)
		}

		insertQuery := `
			INSERT INTO settlements (employee_id, type, period_start, period_end, total_amount, details)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`
		confirmed = s
		err = q.QueryRow(ctx, insertQuery,
			s.EmployeeID, s.Type, s.PeriodStart, s.PeriodEnd, s.TotalAmount, details,
		).Scan(&confirmed.ID, &confirmed.CreatedAt, &confirmed.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return settlement.ErrAlreadySettled
			}
			return fmt.Errorf("failed to insert settlement: %w", err)
		}

		if len(extraPaymentIDs) > 0 {
			flipQuery := `
				UPDATE extra_payments
				SET is_settled = true, settlement_id = $1, updated_at = NOW()
				WHERE id = ANY($2) AND NOT is_settled
			`
			tag, err := q.Exec(ctx, flipQuery, confirmed.ID, extraPaymentIDs)
			if err != nil {
				return fmt.Errorf("failed to consume extra payments: %w", err)
			}
			if int(tag.RowsAffected()) != len(extraPaymentIDs) {
				return settlement.ErrExtraPaymentsConsumed
			}
		}
		return nil
	})
	if err != nil {
		return settlement.Settlement{}, err
	}
	return confirmed, nil
}

const settlementColumns = `s.id, s.employee_id, e.name, e.role, s.type, s.period_start, s.period_end,
		s.total_amount, s.details, s.created_at, s.updated_at, s.deleted_at`

const settlementFrom = ` FROM settlements s JOIN employees e ON e.id = s.employee_id`

func scanSettlement(row pgx.Row) (settlement.Settlement, error) {
	var s settlement.Settlement
	var details []byte
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.EmployeeName, &s.EmployeeRole, &s.Type,
		&s.PeriodStart, &s.PeriodEnd, &s.TotalAmount, &details,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		return settlement.Settlement{}, err
	}
	if err := json.Unmarshal(details, &s.Details); err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to unmarshal settlement details: %w", err)
	}
	return s, nil
}

// GetByID implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + settlementFrom + ` WHERE s.id = $1 AND s.deleted_at IS NULL`

	s, err := scanSettlement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}
	return s, nil
}

// List implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) List(ctx context.Context, filter settlement.ListFilter) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + settlementFrom + ` WHERE s.deleted_at IS NULL`
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(` AND s.employee_id = $%d`, len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(` AND s.type = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND s.period_end >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND s.period_start <= $%d`, len(args))
	}
	query += ` ORDER BY s.period_start DESC, s.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return settlements, nil
}

// Delete implements settlement.SettlementRepository. The soft delete and
// the extra payment release happen in one transaction; the partial unique
// index ignores soft-deleted rows, so the period opens up again.
func (r *settlementRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE settlements
			SET deleted_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
			RETURNING id
		`
		var deletedID string
		if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return settlement.ErrSettlementNotFound
			}
			return fmt.Errorf("failed to delete settlement: %w", err)
		}

		releaseQuery := `
			UPDATE extra_payments
			SET is_settled = false, settlement_id = NULL, updated_at = NOW()
			WHERE settlement_id = $1
		`
		if _, err := q.Exec(ctx, releaseQuery, id); err != nil {
			return fmt.Errorf("failed to release extra payments: %w", err)
		}
		return nil
	})
}
