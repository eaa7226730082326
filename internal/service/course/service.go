package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
)

type CourseServiceImpl struct {
	courseRepo course.CourseRepository
}

func NewCourseService(courseRepo course.CourseRepository) course.CourseService {
	return &CourseServiceImpl{courseRepo: courseRepo}
}

// Create implements course.CourseService.
func (s *CourseServiceImpl) Create(ctx context.Context, req course.CreateCourseRequest) (course.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return course.CourseResponse{}, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return course.CourseResponse{}, fmt.Errorf("invalid price: %w", err)
	}

	created, err := s.courseRepo.Create(ctx, course.Course{
		Name:            req.Name,
		Type:            course.Type(req.Type),
		DurationMinutes: req.DurationMinutes,
		Price:           price,
		IsActive:        true,
	})
	if err != nil {
		return course.CourseResponse{}, fmt.Errorf("failed to create course: %w", err)
	}
	return course.ToResponse(created), nil
}

// Get implements course.CourseService.
func (s *CourseServiceImpl) Get(ctx context.Context, id string) (course.CourseResponse, error) {
	found, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return course.CourseResponse{}, course.ErrCourseNotFound
		}
		return course.CourseResponse{}, fmt.Errorf("failed to get course: %w", err)
	}
	return course.ToResponse(found), nil
}

// List implements course.CourseService.
func (s *CourseServiceImpl) List(ctx context.Context, activeOnly bool) ([]course.CourseResponse, error) {
	courses, err := s.courseRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	responses := make([]course.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, course.ToResponse(c))
	}
	return responses, nil
}

// Update implements course.CourseService. The course type is immutable: a
// SINGLE becoming DOUBLE would silently change the commission scheme of
// every past sale's display, so a new course must be created instead.
func (s *CourseServiceImpl) Update(ctx context.Context, req course.UpdateCourseRequest) (course.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return course.CourseResponse{}, err
	}

	current, err := s.courseRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return course.CourseResponse{}, course.ErrCourseNotFound
		}
		return course.CourseResponse{}, fmt.Errorf("failed to get course: %w", err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.DurationMinutes != nil {
		current.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return course.CourseResponse{}, fmt.Errorf("invalid price: %w", err)
		}
		current.Price = price
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.courseRepo.Update(ctx, current); err != nil {
		return course.CourseResponse{}, fmt.Errorf("failed to update course: %w", err)
	}
	return course.ToResponse(current), nil
}

// Delete implements course.CourseService.
func (s *CourseServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, course.ErrCourseNotFound) || errors.Is(err, course.ErrCourseInUse) {
			return err
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
