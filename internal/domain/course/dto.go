package course

import (
	"github.com/soomspa/spa-backend-go/internal/pkg/validator"
)

type CreateCourseRequest struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
}

func (r *CreateCourseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be SINGLE or DOUBLE",
		})
	}

	if r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be positive",
		})
	}

	if price, ok := validator.IsValidAmount(r.Price); !ok || !validator.IsPositiveAmount(price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a positive amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCourseRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"name"`
	DurationMinutes *int    `json:"duration_minutes"`
	Price           *string `json:"price"`
	IsActive        *bool   `json:"is_active"`
}

func (r *UpdateCourseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be positive",
		})
	}

	if r.Price != nil {
		if price, ok := validator.IsValidAmount(*r.Price); !ok || !validator.IsPositiveAmount(price) {
			errs = append(errs, validator.ValidationError{
				Field:   "price",
				Message: "price must be a positive amount",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CourseResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func ToResponse(c Course) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            string(c.Type),
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price.String(),
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
