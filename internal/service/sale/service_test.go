package sale

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/soomspa/spa-backend-go/internal/domain/employee"
	"github.com/soomspa/spa-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseRepo struct {
	course.CourseRepository
	courses map[string]course.Course
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (course.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return course.Course{}, course.ErrCourseNotFound
	}
	return c, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeSaleRepo struct {
	sale.SaleRepository
	sales map[string]sale.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]sale.Sale)}
}

func (f *fakeSaleRepo) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	s.ID = uuid.NewString()
	f.sales[s.ID] = s
	return s, nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return sale.Sale{}, sale.ErrSaleNotFound
	}
	return s, nil
}

func (f *fakeSaleRepo) Replace(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	if _, ok := f.sales[s.ID]; !ok {
		return sale.Sale{}, sale.ErrSaleNotFound
	}
	f.sales[s.ID] = s
	return s, nil
}

type fixture struct {
	svc         sale.SaleService
	sales       *fakeSaleRepo
	singleID    string
	doubleID    string
	inactiveID  string
	therapistA  string
	therapistB  string
	staffMember string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		singleID:    uuid.NewString(),
		doubleID:    uuid.NewString(),
		inactiveID:  uuid.NewString(),
		therapistA:  uuid.NewString(),
		therapistB:  uuid.NewString(),
		staffMember: uuid.NewString(),
	}

	courses := &fakeCourseRepo{courses: map[string]course.Course{
		f.singleID: {
			ID: f.singleID, Name: "Aroma 60", Type: course.TypeSingle,
			DurationMinutes: 60, Price: decimal.NewFromInt(90000), IsActive: true,
		},
		f.doubleID: {
			ID: f.doubleID, Name: "Couple 90", Type: course.TypeDouble,
			DurationMinutes: 90, Price: decimal.NewFromInt(160000), IsActive: true,
		},
		f.inactiveID: {
			ID: f.inactiveID, Name: "Retired", Type: course.TypeSingle,
			DurationMinutes: 60, Price: decimal.NewFromInt(50000), IsActive: false,
		},
	}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		f.therapistA:  {ID: f.therapistA, Name: "Yuna", Role: employee.RoleTherapist},
		f.therapistB:  {ID: f.therapistB, Name: "Jiho", Role: employee.RoleTherapist},
		f.staffMember: {ID: f.staffMember, Name: "Mina", Role: employee.RoleStaff},
	}}
	f.sales = newFakeSaleRepo()
	f.svc = NewSaleService(f.sales, courses, employees)
	return f
}

func TestCreateSingleSaleCommission(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.singleID,
		PayMethod:  "CARD",
		TotalPrice: "85500",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA, IsChoice: true}},
	})
	require.NoError(t, err)

	// floor(85500 * 0.10) = 8550, choice fee on top.
	require.Len(t, resp.Therapists, 1)
	assert.Equal(t, "8550", resp.Therapists[0].CommissionAmount)
	assert.Equal(t, "2000", resp.Therapists[0].ChoiceFee)
}

func TestCreateDoubleSalePaysFullTierToEach(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.doubleID,
		PayMethod:  "CASH",
		TotalPrice: "160000",
		Therapists: []sale.SaleTherapistInput{
			{EmployeeID: f.therapistA},
			{EmployeeID: f.therapistB, IsChoice: true},
		},
	})
	require.NoError(t, err)

	// 90 minutes is the long tier; each therapist gets the full 8000.
	require.Len(t, resp.Therapists, 2)
	assert.Equal(t, "8000", resp.Therapists[0].CommissionAmount)
	assert.Equal(t, "0", resp.Therapists[0].ChoiceFee)
	assert.Equal(t, "8000", resp.Therapists[1].CommissionAmount)
	assert.Equal(t, "2000", resp.Therapists[1].ChoiceFee)
}

func TestCreateRejectsTherapistCountMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.doubleID,
		PayMethod:  "CASH",
		TotalPrice: "160000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA}},
	})
	assert.ErrorIs(t, err, sale.ErrTherapistCountMismatch)
}

func TestCreateRejectsNonTherapist(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.singleID,
		PayMethod:  "CASH",
		TotalPrice: "90000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.staffMember}},
	})
	assert.ErrorIs(t, err, employee.ErrNotATherapist)
}

func TestCreateRejectsInactiveCourse(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.inactiveID,
		PayMethod:  "CASH",
		TotalPrice: "50000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA}},
	})
	assert.ErrorIs(t, err, course.ErrCourseInactive)
}

func TestUpdateRepricesCommission(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.singleID,
		PayMethod:  "CASH",
		TotalPrice: "90000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA}},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), sale.UpdateSaleRequest{
		ID:         created.ID,
		CourseID:   f.singleID,
		PayMethod:  "CARD",
		TotalPrice: "120000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistB}},
	})
	require.NoError(t, err)

	// The therapist rows were swapped and repriced from the new total.
	require.Len(t, updated.Therapists, 1)
	assert.Equal(t, f.therapistB, updated.Therapists[0].EmployeeID)
	assert.Equal(t, "12000", updated.Therapists[0].CommissionAmount)
}

func TestUpdateKeepsSoldAtWhenOmitted(t *testing.T) {
	f := newFixture(t)

	soldAt := time.Date(2026, 2, 14, 19, 30, 0, 0, time.UTC).Format(time.RFC3339)
	created, err := f.svc.Create(context.Background(), sale.CreateSaleRequest{
		CourseID:   f.singleID,
		PayMethod:  "CASH",
		TotalPrice: "90000",
		SoldAt:     &soldAt,
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA}},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), sale.UpdateSaleRequest{
		ID:         created.ID,
		CourseID:   f.singleID,
		PayMethod:  "CASH",
		TotalPrice: "95000",
		Therapists: []sale.SaleTherapistInput{{EmployeeID: f.therapistA}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.SoldAt, updated.SoldAt)
}

func TestGetNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)
}
