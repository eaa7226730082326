package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soomspa/spa-backend-go/internal/domain/course"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

type courseRepositoryImpl struct {
	db *database.DB
}

func NewCourseRepository(db *database.DB) course.CourseRepository {
	return &courseRepositoryImpl{db: db}
}

const courseColumns = `id, name, type, duration_minutes, price, is_active, created_at, updated_at`

func scanCourse(row pgx.Row) (course.Course, error) {
	var c course.Course
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.DurationMinutes, &c.Price,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements course.CourseRepository.
func (r *courseRepositoryImpl) Create(ctx context.Context, newCourse course.Course) (course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO courses (name, type, duration_minutes, price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + courseColumns

	c, err := scanCourse(q.QueryRow(ctx, query,
		newCourse.Name, newCourse.Type, newCourse.DurationMinutes, newCourse.Price, newCourse.IsActive,
	))
	if err != nil {
		return course.Course{}, fmt.Errorf("failed to create course: %w", err)
	}
	return c, nil
}

// GetByID implements course.CourseRepository.
func (r *courseRepositoryImpl) GetByID(ctx context.Context, id string) (course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	c, err := scanCourse(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrCourseNotFound
		}
		return course.Course{}, fmt.Errorf("failed to get course: %w", err)
	}
	return c, nil
}

// List implements course.CourseRepository.
func (r *courseRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + courseColumns + ` FROM courses`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []course.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update implements course.CourseRepository.
func (r *courseRepositoryImpl) Update(ctx context.Context, c course.Course) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE courses
		SET name = $1, duration_minutes = $2, price = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, c.Name, c.DurationMinutes, c.Price, c.IsActive, c.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.ErrCourseNotFound
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// Delete implements course.CourseRepository.
func (r *courseRepositoryImpl) Delete(ctx context.Context, id string) error {
	referenced, err := r.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return course.ErrCourseInUse
	}

	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}
	return nil
}

// IsReferenced implements course.CourseRepository.
func (r *courseRepositoryImpl) IsReferenced(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var referenced bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE course_id = $1)`, id).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check course references: %w", err)
	}
	return referenced, nil
}
