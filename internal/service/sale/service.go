package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
)

type SaleServiceImpl struct {
	saleRepo     sale.SaleRepository
	courseRepo   course.CourseRepository
	employeeRepo employee.EmployeeRepository
}

func NewSaleService(
	saleRepo sale.SaleRepository,
	courseRepo course.CourseRepository,
	employeeRepo employee.EmployeeRepository,
) sale.SaleService {
	return &SaleServiceImpl{
		saleRepo:     saleRepo,
		courseRepo:   courseRepo,
		employeeRepo: employeeRepo,
	}
}

// buildSale resolves the course, checks the therapist list against it and
// computes the commission rows. Both Create and Update funnel through here
// so an edited sale is always re-priced from scratch.
func (s *SaleServiceImpl) buildSale(ctx context.Context, req sale.CreateSaleRequest) (sale.Sale, error) {
	c, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return sale.Sale{}, course.ErrCourseNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get course: %w", err)
	}
	if !c.IsActive {
		return sale.Sale{}, course.ErrCourseInactive
	}

	if len(req.Therapists) != c.TherapistCount() {
		return sale.Sale{}, sale.ErrTherapistCountMismatch
	}

	totalPrice, err := decimal.NewFromString(req.TotalPrice)
	if err != nil {
		return sale.Sale{}, fmt.Errorf("invalid total_price: %w", err)
	}

	soldAt := time.Now()
	if req.SoldAt != nil {
		soldAt, err = time.Parse(time.RFC3339, *req.SoldAt)
		if err != nil {
			return sale.Sale{}, fmt.Errorf("invalid sold_at: %w", err)
		}
	}

	therapists := make([]sale.SaleTherapist, 0, len(req.Therapists))
	for _, input := range req.Therapists {
		emp, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return sale.Sale{}, employee.ErrEmployeeNotFound
			}
			return sale.Sale{}, fmt.Errorf("failed to get therapist: %w", err)
		}
		if !emp.IsCommissionPaid() {
			return sale.Sale{}, employee.ErrNotATherapist
		}

		result := sale.CalculateCommission(sale.CommissionInput{
			CourseType:      c.Type,
			DurationMinutes: c.DurationMinutes,
			TotalPrice:      totalPrice,
			IsChoice:        input.IsChoice,
		})
		therapists = append(therapists, sale.SaleTherapist{
			EmployeeID:       emp.ID,
			IsChoice:         input.IsChoice,
			CommissionAmount: result.CommissionAmount,
			ChoiceFee:        result.ChoiceFee,
		})
	}

	return sale.Sale{
		CourseID:   c.ID,
		PayMethod:  sale.PayMethod(req.PayMethod),
		TotalPrice: totalPrice,
		SoldAt:     soldAt,
		Therapists: therapists,
	}, nil
}

// Create implements sale.SaleService.
func (s *SaleServiceImpl) Create(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	newSale, err := s.buildSale(ctx, req)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	created, err := s.saleRepo.Create(ctx, newSale)
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to create sale: %w", err)
	}
	return sale.ToResponse(created), nil
}

// Get implements sale.SaleService.
func (s *SaleServiceImpl) Get(ctx context.Context, id string) (sale.SaleResponse, error) {
	found, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			return sale.SaleResponse{}, sale.ErrSaleNotFound
		}
		return sale.SaleResponse{}, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale.ToResponse(found), nil
}

// List implements sale.SaleService.
func (s *SaleServiceImpl) List(ctx context.Context, filter sale.ListSalesFilter) ([]sale.SaleResponse, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, item := range sales {
		responses = append(responses, sale.ToResponse(item))
	}
	return responses, nil
}

// Update implements sale.SaleService. The therapist rows are recomputed and
// swapped wholesale, so commission on the sale always reflects its current
// course, price and therapist set.
func (s *SaleServiceImpl) Update(ctx context.Context, req sale.UpdateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	existing, err := s.saleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			return sale.SaleResponse{}, sale.ErrSaleNotFound
		}
		return sale.SaleResponse{}, fmt.Errorf("failed to get sale: %w", err)
	}

	rebuilt, err := s.buildSale(ctx, sale.CreateSaleRequest{
		CourseID:   req.CourseID,
		PayMethod:  req.PayMethod,
		TotalPrice: req.TotalPrice,
		SoldAt:     req.SoldAt,
		Therapists: req.Therapists,
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}
	rebuilt.ID = req.ID
	if req.SoldAt == nil {
		rebuilt.SoldAt = existing.SoldAt
	}

	updated, err := s.saleRepo.Replace(ctx, rebuilt)
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to update sale: %w", err)
	}
	return sale.ToResponse(updated), nil
}

// Delete implements sale.SaleService.
func (s *SaleServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			return sale.ErrSaleNotFound
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}
