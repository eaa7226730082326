package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/expense"
)

type ExpenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseService(expenseRepo expense.ExpenseRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{expenseRepo: expenseRepo}
}

// Create implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	spentOn, err := time.Parse("2006-01-02", req.SpentOn)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("invalid spent_on: %w", err)
	}

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		Category: req.Category,
		Amount:   amount,
		SpentOn:  spentOn,
		Memo:     req.Memo,
	})
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense.ToResponse(created), nil
}

// Get implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Get(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	found, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expense.ErrExpenseNotFound) {
			return expense.ExpenseResponse{}, expense.ErrExpenseNotFound
		}
		return expense.ExpenseResponse{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense.ToResponse(found), nil
}

// List implements expense.ExpenseService.
func (s *ExpenseServiceImpl) List(ctx context.Context, filter expense.ListFilter) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, expense.ToResponse(e))
	}
	return responses, nil
}

// Update implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	current, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, expense.ErrExpenseNotFound) {
			return expense.ExpenseResponse{}, expense.ErrExpenseNotFound
		}
		return expense.ExpenseResponse{}, fmt.Errorf("failed to get expense: %w", err)
	}

	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("invalid amount: %w", err)
		}
		current.Amount = amount
	}
	if req.SpentOn != nil {
		spentOn, err := time.Parse("2006-01-02", *req.SpentOn)
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("invalid spent_on: %w", err)
		}
		current.SpentOn = spentOn
	}
	if req.Memo != nil {
		current.Memo = req.Memo
	}

	if err := s.expenseRepo.Update(ctx, current); err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense.ToResponse(current), nil
}

// Delete implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, expense.ErrExpenseNotFound) {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
