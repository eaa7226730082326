package course

import (
	"context"
)

type CourseRepository interface {
	Create(ctx context.Context, newCourse Course) (Course, error)
	GetByID(ctx context.Context, id string) (Course, error)
	List(ctx context.Context, activeOnly bool) ([]Course, error)
	Update(ctx context.Context, c Course) error

	// Delete removes the course. It must fail with ErrCourseInUse when a
	// sale references the course; Deactivate is the soft-hide path.
	Delete(ctx context.Context, id string) error
	IsReferenced(ctx context.Context, id string) (bool, error)
}
