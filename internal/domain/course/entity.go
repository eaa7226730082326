package course

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type distinguishes one-therapist courses from two-therapist ones. The
// commission formula branches on it.
type Type string

const (
	TypeSingle Type = "SINGLE"
	TypeDouble Type = "DOUBLE"
)

func ValidTypes() []string {
	return []string{string(TypeSingle), string(TypeDouble)}
}

type Course struct {
	ID              string
	Name            string
	Type            Type
	DurationMinutes int
	Price           decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TherapistCount returns how many therapists a sale of this course requires.
func (c *Course) TherapistCount() int {
	if c.Type == TypeDouble {
		return 2
	}
	return 1
}
