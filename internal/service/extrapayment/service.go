package extrapayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
)

type ExtraPaymentServiceImpl struct {
	extraPaymentRepo extrapayment.ExtraPaymentRepository
	employeeRepo     employee.EmployeeRepository
}

func NewExtraPaymentService(
	extraPaymentRepo extrapayment.ExtraPaymentRepository,
	employeeRepo employee.EmployeeRepository,
) extrapayment.ExtraPaymentService {
	return &ExtraPaymentServiceImpl{
		extraPaymentRepo: extraPaymentRepo,
		employeeRepo:     employeeRepo,
	}
}

// Create implements extrapayment.ExtraPaymentService.
func (s *ExtraPaymentServiceImpl) Create(ctx context.Context, req extrapayment.CreateExtraPaymentRequest) (extrapayment.ExtraPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return extrapayment.ExtraPaymentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return extrapayment.ExtraPaymentResponse{}, employee.ErrEmployeeNotFound
		}
		return extrapayment.ExtraPaymentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return extrapayment.ExtraPaymentResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	paidOn, err := time.Parse("2006-01-02", req.PaidOn)
	if err != nil {
		return extrapayment.ExtraPaymentResponse{}, fmt.Errorf("invalid paid_on: %w", err)
	}

	created, err := s.extraPaymentRepo.Create(ctx, extrapayment.ExtraPayment{
		EmployeeID: req.EmployeeID,
		Type:       extrapayment.Type(req.Type),
		Amount:     amount,
		PaidOn:     paidOn,
		Memo:       req.Memo,
	})
	if err != nil {
		return extrapayment.ExtraPaymentResponse{}, fmt.Errorf("failed to create extra payment: %w", err)
	}
	return extrapayment.ToResponse(created), nil
}

// Get implements extrapayment.ExtraPaymentService.
func (s *ExtraPaymentServiceImpl) Get(ctx context.Context, id string) (extrapayment.ExtraPaymentResponse, error) {
	found, err := s.extraPaymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, extrapayment.ErrExtraPaymentNotFound) {
			return extrapayment.ExtraPaymentResponse{}, extrapayment.ErrExtraPaymentNotFound
		}
		return extrapayment.ExtraPaymentResponse{}, fmt.Errorf("failed to get extra payment: %w", err)
	}
	return extrapayment.ToResponse(found), nil
}

// List implements extrapayment.ExtraPaymentService.
func (s *ExtraPaymentServiceImpl) List(ctx context.Context, filter extrapayment.ListFilter) ([]extrapayment.ExtraPaymentResponse, error) {
	payments, err := s.extraPaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra payments: %w", err)
	}

	responses := make([]extrapayment.ExtraPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, extrapayment.ToResponse(p))
	}
	return responses, nil
}

// Delete implements extrapayment.ExtraPaymentService. A consumed row is
// frozen until the settlement that consumed it is deleted.
func (s *ExtraPaymentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.extraPaymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, extrapayment.ErrExtraPaymentNotFound) || errors.Is(err, extrapayment.ErrAlreadySettled) {
			return err
		}
		return fmt.Errorf("failed to delete extra payment: %w", err)
	}
	return nil
}
