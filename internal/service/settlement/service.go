package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
)

type SettlementServiceImpl struct {
	settlementRepo   settlement.SettlementRepository
	employeeRepo     employee.EmployeeRepository
	attendanceRepo   attendance.AttendanceRepository
	saleRepo         sale.SaleRepository
	extraPaymentRepo extrapayment.ExtraPaymentRepository
	loc              *time.Location
}

func NewSettlementService(
	settlementRepo settlement.SettlementRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	saleRepo sale.SaleRepository,
	extraPaymentRepo extrapayment.ExtraPaymentRepository,
	loc *time.Location,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		settlementRepo:   settlementRepo,
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		saleRepo:         saleRepo,
		extraPaymentRepo: extraPaymentRepo,
		loc:              loc,
	}
}

// period converts the YYYY-MM-DD pair to inclusive shop-local day bounds.
func (s *SettlementServiceImpl) period(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", startStr, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period_start: %w", err)
	}
	end, err = time.ParseInLocation("2006-01-02", endStr, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period_end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, settlement.ErrInvalidPeriod
	}
	return start, end, nil
}

// fetchPeriodData gathers the aggregator inputs for one employee. Reads
// only; the confirm step re-checks consumption flags inside its own
// transaction.
func (s *SettlementServiceImpl) fetchPeriodData(ctx context.Context, employeeID string, start, end time.Time) (PeriodData, error) {
	attSummary, err := s.attendanceRepo.Summarize(ctx, employeeID, start, end)
	if err != nil {
		return PeriodData{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	commission, err := s.saleRepo.SumCommissions(ctx, employeeID, start, end)
	if err != nil {
		return PeriodData{}, fmt.Errorf("failed to sum commissions: %w", err)
	}

	payments, err := s.extraPaymentRepo.ListUnsettled(ctx, employeeID, start, end)
	if err != nil {
		return PeriodData{}, fmt.Errorf("failed to list extra payments: %w", err)
	}

	return PeriodData{
		PeriodStart:   start,
		PeriodEnd:     end,
		Attendance:    attSummary,
		Commission:    commission,
		ExtraPayments: payments,
	}, nil
}

// Preview implements settlement.SettlementService.
func (s *SettlementServiceImpl) Preview(ctx context.Context, req settlement.PreviewRequest) (settlement.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.PreviewResponse{}, err
	}

	start, end, err := s.period(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return settlement.PreviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return settlement.PreviewResponse{}, employee.ErrEmployeeNotFound
		}
		return settlement.PreviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	plan, err := settlement.PlanFor(emp)
	if err != nil {
		return settlement.PreviewResponse{}, err
	}

	data, err := s.fetchPeriodData(ctx, emp.ID, start, end)
	if err != nil {
		return settlement.PreviewResponse{}, err
	}

	result := Aggregate(plan, data)

	return settlement.PreviewResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    &emp.Name,
		PeriodStart:     start.Format("2006-01-02"),
		PeriodEnd:       end.Format("2006-01-02"),
		Breakdown:       settlement.ToBreakdownResponse(result.Breakdown),
		TotalAmount:     result.TotalAmount.String(),
		ExtraPaymentIDs: result.ExtraPaymentIDs,
	}, nil
}

// WeeklyPreview implements settlement.SettlementService. It is the
// commission-only variant: one row per active therapist, advances and
// bonuses excluded.
func (s *SettlementServiceImpl) WeeklyPreview(ctx context.Context, req settlement.WeeklyPreviewRequest) ([]settlement.WeeklyPreviewItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end, err := s.period(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	therapists, err := s.employeeRepo.ListByRole(ctx, employee.RoleTherapist, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list therapists: %w", err)
	}

	summaries, err := s.saleRepo.SumCommissionsForAll(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum commissions: %w", err)
	}
	byEmployee := make(map[string]sale.CommissionSummary, len(summaries))
	for _, summary := range summaries {
		byEmployee[summary.EmployeeID] = summary
	}

	items := make([]settlement.WeeklyPreviewItem, 0, len(therapists))
	for _, t := range therapists {
		summary := byEmployee[t.ID]
		total := summary.CommissionSum.Add(summary.ChoiceFeeSum)
		items = append(items, settlement.WeeklyPreviewItem{
			EmployeeID:       t.ID,
			EmployeeName:     t.Name,
			SaleCount:        summary.SaleCount,
			ChoiceCount:      summary.ChoiceCount,
			CommissionAmount: summary.CommissionSum.String(),
			ChoiceFeeAmount:  summary.ChoiceFeeSum.String(),
			TotalAmount:      total.String(),
		})
	}

	return items, nil
}

// Create implements settlement.SettlementService. The payout is always
// recomputed server-side; a stale preview can never be confirmed with
// stale figures.
func (s *SettlementServiceImpl) Create(ctx context.Context, req settlement.CreateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	start, end, err := s.period(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return settlement.SettlementResponse{}, employee.ErrEmployeeNotFound
		}
		return settlement.SettlementResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	plan, err := settlement.PlanFor(emp)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	data, err := s.fetchPeriodData(ctx, emp.ID, start, end)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	result := Aggregate(plan, data)

	confirmed, err := s.settlementRepo.Confirm(ctx, settlement.Settlement{
		EmployeeID:  emp.ID,
		Type:        settlement.Type(req.Type),
		PeriodStart: start,
		PeriodEnd:   end,
		TotalAmount: result.TotalAmount,
		Details:     result.Breakdown,
	}, result.ExtraPaymentIDs)
	if err != nil {
		if errors.Is(err, settlement.ErrAlreadySettled) || errors.Is(err, settlement.ErrExtraPaymentsConsumed) {
			return settlement.SettlementResponse{}, err
		}
		return settlement.SettlementResponse{}, fmt.Errorf("failed to confirm settlement: %w", err)
	}

	confirmed.EmployeeName = &emp.Name
	role := string(emp.Role)
	confirmed.EmployeeRole = &role

	return settlement.ToResponse(confirmed), nil
}

// Get implements settlement.SettlementService.
func (s *SettlementServiceImpl) Get(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	found, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return settlement.SettlementResponse{}, settlement.ErrSettlementNotFound
		}
		return settlement.SettlementResponse{}, fmt.Errorf("failed to get settlement: %w", err)
	}
	return settlement.ToResponse(found), nil
}

// List implements settlement.SettlementService.
func (s *SettlementServiceImpl) List(ctx context.Context, filter settlement.ListFilter) ([]settlement.SettlementResponse, error) {
	settlements, err := s.settlementRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	responses := make([]settlement.SettlementResponse, 0, len(settlements))
	for _, item := range settlements {
		responses = append(responses, settlement.ToResponse(item))
	}
	return responses, nil
}

// Delete implements settlement.SettlementService.
func (s *SettlementServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.settlementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return settlement.ErrSettlementNotFound
		}
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	return nil
}
