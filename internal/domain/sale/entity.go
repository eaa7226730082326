package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayMethod string

const (
	PayMethodCash     PayMethod = "CASH"
	PayMethodCard     PayMethod = "CARD"
	PayMethodTransfer PayMethod = "TRANSFER"
)

func ValidPayMethods() []string {
	return []string{string(PayMethodCash), string(PayMethodCard), string(PayMethodTransfer)}
}

// Sale is one completed service transaction. It owns one SaleTherapist row
// per participating therapist; the commission on those rows is computed once
// at creation time and replaced wholesale when the sale is edited.
type Sale struct {
	ID         string
	CourseID   string
	PayMethod  PayMethod
	TotalPrice decimal.Decimal
	SoldAt     time.Time
	Therapists []SaleTherapist
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	CourseName *string
	CourseType *string
}

type SaleTherapist struct {
	ID               string
	SaleID           string
	EmployeeID       string
	IsChoice         bool
	CommissionAmount decimal.Decimal
	ChoiceFee        decimal.Decimal

	// Joined fields
	EmployeeName *string
}
