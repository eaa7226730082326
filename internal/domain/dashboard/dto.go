package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid date (YYYY-MM-DD)",
		})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid date (YYYY-MM-DD)",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to cannot be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RevenueByMethod is one pay-method slice of the revenue total.
type RevenueByMethod struct {
	PayMethod string
	SaleCount int
	Amount    decimal.Decimal
}

// DailyRevenue is one business day's sales total.
type DailyRevenue struct {
	Date      string
	SaleCount int
	Amount    decimal.Decimal
}

// CourseSales is the per-course sales count and revenue.
type CourseSales struct {
	CourseID   string
	CourseName string
	SaleCount  int
	Amount     decimal.Decimal
}

// Summary is the financial overview for a period.
type Summary struct {
	TotalRevenue    decimal.Decimal
	TotalExpenses   decimal.Decimal
	TotalCommission decimal.Decimal
	NetAmount       decimal.Decimal
	SaleCount       int
	ByMethod        []RevenueByMethod
	ByDay           []DailyRevenue
	ByCourse        []CourseSales
}

type RevenueByMethodResponse struct {
	PayMethod string `json:"pay_method"`
	SaleCount int    `json:"sale_count"`
	Amount    string `json:"amount"`
}

type DailyRevenueResponse struct {
	Date      string `json:"date"`
	SaleCount int    `json:"sale_count"`
	Amount    string `json:"amount"`
}

type CourseSalesResponse struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	SaleCount  int    `json:"sale_count"`
	Amount     string `json:"amount"`
}

type SummaryResponse struct {
	TotalRevenue    string                    `json:"total_revenue"`
	TotalExpenses   string                    `json:"total_expenses"`
	TotalCommission string                    `json:"total_commission"`
	NetAmount       string                    `json:"net_amount"`
	SaleCount       int                       `json:"sale_count"`
	ByMethod        []RevenueByMethodResponse `json:"by_method"`
	ByDay           []DailyRevenueResponse    `json:"by_day"`
	ByCourse        []CourseSalesResponse     `json:"by_course"`
}

func ToResponse(s Summary) SummaryResponse {
	resp := SummaryResponse{
		TotalRevenue:    s.TotalRevenue.String(),
		TotalExpenses:   s.TotalExpenses.String(),
		TotalCommission: s.TotalCommission.String(),
		NetAmount:       s.NetAmount.String(),
		SaleCount:       s.SaleCount,
		ByMethod:        make([]RevenueByMethodResponse, 0, len(s.ByMethod)),
		ByDay:           make([]DailyRevenueResponse, 0, len(s.ByDay)),
		ByCourse:        make([]CourseSalesResponse, 0, len(s.ByCourse)),
	}
	for _, m := range s.ByMethod {
		resp.ByMethod = append(resp.ByMethod, RevenueByMethodResponse{
			PayMethod: m.PayMethod,
			SaleCount: m.SaleCount,
			Amount:    m.Amount.String(),
		})
	}
	for _, d := range s.ByDay {
		resp.ByDay = append(resp.ByDay, DailyRevenueResponse{
			Date:      d.Date,
			SaleCount: d.SaleCount,
			Amount:    d.Amount.String(),
		})
	}
	for _, c := range s.ByCourse {
		resp.ByCourse = append(resp.ByCourse, CourseSalesResponse{
			CourseID:   c.CourseID,
			CourseName: c.CourseName,
			SaleCount:  c.SaleCount,
			Amount:     c.Amount.String(),
		})
	}
	return resp
}
