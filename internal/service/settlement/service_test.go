package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/attendance"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/extrapayment"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/soomspa/spa-backend-go/internal/domain/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. They reproduce the repository contracts the service
// relies on, including the ledger's overlap and consumption checks.

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, role employee.Role, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Role != role {
			continue
		}
		if activeOnly && !e.IsActive() {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) IsReferenced(ctx context.Context, id string) (bool, error) {
	return false, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	summary attendance.Summary
}

func (f *fakeAttendanceRepo) Summarize(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error) {
	return f.summary, nil
}

type fakeSaleRepo struct {
	sale.SaleRepository
	summaries map[string]sale.CommissionSummary
}

func (f *fakeSaleRepo) SumCommissions(ctx context.Context, employeeID string, from, to time.Time) (sale.CommissionSummary, error) {
	return f.summaries[employeeID], nil
}

func (f *fakeSaleRepo) SumCommissionsForAll(ctx context.Context, from, to time.Time) ([]sale.CommissionSummary, error) {
	var out []sale.CommissionSummary
	for _, s := range f.summaries {
		out = append(out, s)
	}
	return out, nil
}

type fakeExtraPaymentRepo struct {
	extrapayment.ExtraPaymentRepository
	payments map[string]*extrapayment.ExtraPayment
}

func (f *fakeExtraPaymentRepo) ListUnsettled(ctx context.Context, employeeID string, from, to time.Time) ([]extrapayment.ExtraPayment, error) {
	var out []extrapayment.ExtraPayment
	for _, p := range f.payments {
		if p.EmployeeID == employeeID && !p.IsSettled {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeSettlementRepo struct {
	settlements map[string]*settlement.Settlement
	extraRepo   *fakeExtraPaymentRepo
	consumed    map[string][]string // settlement id -> extra payment ids
}

func newFakeSettlementRepo(extraRepo *fakeExtraPaymentRepo) *fakeSettlementRepo {
	return &fakeSettlementRepo{
		settlements: make(map[string]*settlement.Settlement),
		extraRepo:   extraRepo,
		consumed:    make(map[string][]string),
	}
}

func (f *fakeSettlementRepo) Confirm(ctx context.Context, s settlement.Settlement, extraPaymentIDs []string) (settlement.Settlement, error) {
	for _, existing := range f.settlements {
		if existing.DeletedAt != nil || existing.EmployeeID != s.EmployeeID || existing.Type != s.Type {
			continue
		}
		if !s.PeriodStart.After(existing.PeriodEnd) && !s.PeriodEnd.Before(existing.PeriodStart) {
			return settlement.Settlement{}, settlement.ErrAlreadySettled
		}
	}
	for _, id := range extraPaymentIDs {
		p, ok := f.extraRepo.payments[id]
		if !ok || p.IsSettled {
			return settlement.Settlement{}, settlement.ErrExtraPaymentsConsumed
		}
	}
	for _, id := range extraPaymentIDs {
		f.extraRepo.payments[id].IsSettled = true
	}
	s.ID = uuid.Must(uuid.NewV7()).String()
	s.CreatedAt = time.Now()
	stored := s
	f.settlements[s.ID] = &stored
	f.consumed[s.ID] = extraPaymentIDs
	return s, nil
}

func (f *fakeSettlementRepo) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	s, ok := f.settlements[id]
	if !ok || s.DeletedAt != nil {
		return settlement.Settlement{}, settlement.ErrSettlementNotFound
	}
	return *s, nil
}

func (f *fakeSettlementRepo) List(ctx context.Context, filter settlement.ListFilter) ([]settlement.Settlement, error) {
	var out []settlement.Settlement
	for _, s := range f.settlements {
		if s.DeletedAt == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSettlementRepo) Delete(ctx context.Context, id string) error {
	s, ok := f.settlements[id]
	if !ok || s.DeletedAt != nil {
		return settlement.ErrSettlementNotFound
	}
	now := time.Now()
	s.DeletedAt = &now
	for _, paymentID := range f.consumed[id] {
		if p, ok := f.extraRepo.payments[paymentID]; ok {
			p.IsSettled = false
		}
	}
	return nil
}

type fixture struct {
	svc         settlement.SettlementService
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	sales       *fakeSaleRepo
	extras      *fakeExtraPaymentRepo
	settlements *fakeSettlementRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	employees := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	attendances := &fakeAttendanceRepo{}
	sales := &fakeSaleRepo{summaries: make(map[string]sale.CommissionSummary)}
	extras := &fakeExtraPaymentRepo{payments: make(map[string]*extrapayment.ExtraPayment)}
	settlements := newFakeSettlementRepo(extras)

	svc := NewSettlementService(settlements, employees, attendances, sales, extras, loc)
	return &fixture{
		svc:         svc,
		employees:   employees,
		attendances: attendances,
		sales:       sales,
		extras:      extras,
		settlements: settlements,
	}
}

func (f *fixture) addStaff(id string, hourlyRate, mealAllowance int64) {
	rate := decimal.NewFromInt(hourlyRate)
	meal := decimal.NewFromInt(mealAllowance)
	f.employees.employees[id] = employee.Employee{
		ID:            id,
		Name:          "Staff " + id,
		Role:          employee.RoleStaff,
		HourlyRate:    &rate,
		MealAllowance: &meal,
		JoinedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) addTherapist(id, name string) {
	f.employees.employees[id] = employee.Employee{
		ID:       id,
		Name:     name,
		Role:     employee.RoleTherapist,
		JoinedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSettlementService_PreviewStaff(t *testing.T) {
	f := newFixture(t)
	f.addStaff("emp-1", 10000, 5000)
	f.attendances.summary = attendance.Summary{WorkedDays: 20, TotalWorkHours: decimal.NewFromInt(160)}
	f.extras.payments["ep-1"] = &extrapayment.ExtraPayment{
		ID:         "ep-1",
		EmployeeID: "emp-1",
		Type:       extrapayment.TypeAdvance,
		Amount:     decimal.NewFromInt(50000),
	}

	resp, err := f.svc.Preview(context.Background(), settlement.PreviewRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "1650000", resp.TotalAmount)
	assert.Equal(t, "1600000", resp.Breakdown.BaseAmount)
	assert.Equal(t, "100000", resp.Breakdown.MealAllowance)
	assert.Equal(t, []string{"ep-1"}, resp.ExtraPaymentIDs)

	// Preview must not consume anything.
	assert.False(t, f.extras.payments["ep-1"].IsSettled)
	assert.Empty(t, f.settlements.settlements)
}

func TestSettlementService_PreviewUnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Preview(context.Background(), settlement.PreviewRequest{
		EmployeeID:  "missing",
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-31",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSettlementService_PreviewInvalidPeriod(t *testing.T) {
	f := newFixture(t)
	f.addStaff("emp-1", 10000, 5000)

	_, err := f.svc.Preview(context.Background(), settlement.PreviewRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-08-31",
		PeriodEnd:   "2026-08-01",
	})
	assert.Error(t, err)
}

func TestSettlementService_CreateConsumesExtraPayments(t *testing.T) {
	f := newFixture(t)
	f.addTherapist("emp-1", "Mina")
	f.sales.summaries["emp-1"] = sale.CommissionSummary{
		EmployeeID:    "emp-1",
		SaleCount:     10,
		CommissionSum: decimal.NewFromInt(80000),
		ChoiceFeeSum:  decimal.NewFromInt(6000),
		ChoiceCount:   3,
	}
	f.extras.payments["ep-1"] = &extrapayment.ExtraPayment{
		ID:         "ep-1",
		EmployeeID: "emp-1",
		Type:       extrapayment.TypeBonus,
		Amount:     decimal.NewFromInt(20000),
	}

	resp, err := f.svc.Create(context.Background(), settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "WEEKLY",
		PeriodStart: "2026-08-03",
		PeriodEnd:   "2026-08-09",
	})
	require.NoError(t, err)

	assert.Equal(t, "106000", resp.TotalAmount)
	assert.Equal(t, "WEEKLY", resp.Type)
	assert.True(t, f.extras.payments["ep-1"].IsSettled)
}

func TestSettlementService_CreateTwiceSamePeriod(t *testing.T) {
	f := newFixture(t)
	f.addTherapist("emp-1", "Mina")

	req := settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "MONTHLY",
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-31",
	}

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, settlement.ErrAlreadySettled)
}

func TestSettlementService_CreateOverlappingPeriod(t *testing.T) {
	f := newFixture(t)
	f.addTherapist("emp-1", "Mina")

	_, err := f.svc.Create(context.Background(), settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "WEEKLY",
		PeriodStart: "2026-08-03",
		PeriodEnd:   "2026-08-09",
	})
	require.NoError(t, err)

	// Partial overlap is enough to trip the ledger.
	_, err = f.svc.Create(context.Background(), settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "WEEKLY",
		PeriodStart: "2026-08-09",
		PeriodEnd:   "2026-08-15",
	})
	assert.ErrorIs(t, err, settlement.ErrAlreadySettled)
}

func TestSettlementService_DeleteRestoresExtraPayments(t *testing.T) {
	f := newFixture(t)
	f.addStaff("emp-1", 10000, 5000)
	f.attendances.summary = attendance.Summary{WorkedDays: 5, TotalWorkHours: decimal.NewFromInt(40)}
	f.extras.payments["ep-1"] = &extrapayment.ExtraPayment{
		ID:         "ep-1",
		EmployeeID: "emp-1",
		Type:       extrapayment.TypeAdvance,
		Amount:     decimal.NewFromInt(30000),
	}

	resp, err := f.svc.Create(context.Background(), settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "WEEKLY",
		PeriodStart: "2026-08-03",
		PeriodEnd:   "2026-08-09",
	})
	require.NoError(t, err)
	require.True(t, f.extras.payments["ep-1"].IsSettled)

	require.NoError(t, f.svc.Delete(context.Background(), resp.ID))
	assert.False(t, f.extras.payments["ep-1"].IsSettled, "deleting the settlement must release its advances")

	// And the same period can be settled again.
	_, err = f.svc.Create(context.Background(), settlement.CreateSettlementRequest{
		EmployeeID:  "emp-1",
		Type:        "WEEKLY",
		PeriodStart: "2026-08-03",
		PeriodEnd:   "2026-08-09",
	})
	assert.NoError(t, err)
}

func TestSettlementService_WeeklyPreview(t *testing.T) {
	f := newFixture(t)
	f.addTherapist("emp-1", "Mina")
	f.addTherapist("emp-2", "Jiyoung")
	f.addStaff("emp-3", 10000, 5000)
	f.sales.summaries["emp-1"] = sale.CommissionSummary{
		EmployeeID:    "emp-1",
		SaleCount:     12,
		CommissionSum: decimal.NewFromInt(96000),
		ChoiceFeeSum:  decimal.NewFromInt(4000),
		ChoiceCount:   2,
	}

	items, err := f.svc.WeeklyPreview(context.Background(), settlement.WeeklyPreviewRequest{
		PeriodStart: "2026-08-03",
		PeriodEnd:   "2026-08-09",
	})
	require.NoError(t, err)
	require.Len(t, items, 2, "one row per therapist, staff excluded")

	byID := make(map[string]settlement.WeeklyPreviewItem, len(items))
	for _, item := range items {
		byID[item.EmployeeID] = item
	}
	assert.Equal(t, "100000", byID["emp-1"].TotalAmount)
	assert.Equal(t, 12, byID["emp-1"].SaleCount)
	assert.Equal(t, "0", byID["emp-2"].TotalAmount, "therapist with no sales still gets a zero row")
}

func TestSettlementService_GetNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
}
