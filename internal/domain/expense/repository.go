package expense

import (
	"context"
	"time"
)

type ExpenseRepository interface {
	Create(ctx context.Context, exp Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, filter ListFilter) ([]Expense, error)
	Update(ctx context.Context, exp Expense) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Category *string
	From     *time.Time
	To       *time.Time
}
