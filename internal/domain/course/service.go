package course

import (
	"context"
)

type CourseService interface {
	Create(ctx context.Context, req CreateCourseRequest) (CourseResponse, error)
	Get(ctx context.Context, id string) (CourseResponse, error)
	List(ctx context.Context, activeOnly bool) ([]CourseResponse, error)
	Update(ctx context.Context, req UpdateCourseRequest) (CourseResponse, error)
	Delete(ctx context.Context, id string) error
}
