package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/expense"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `id, category, amount, spent_on, memo, created_at, updated_at`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.Category, &e.Amount, &e.SpentOn, &e.Memo, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (category, amount, spent_on, memo)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + expenseColumns

	e, err := scanExpense(q.QueryRow(ctx, query, exp.Category, exp.Amount, exp.SpentOn, exp.Memo))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// List implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) List(ctx context.Context, filter expense.ListFilter) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE true`
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND spent_on >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND spent_on <= $%d`, len(args))
	}
	query += ` ORDER BY spent_on DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Update(ctx context.Context, exp expense.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET category = $1, amount = $2, spent_on = $3, memo = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, exp.Category, exp.Amount, exp.SpentOn, exp.Memo, exp.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}
