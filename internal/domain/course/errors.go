package course

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCourseInUse    = errors.New("course is referenced by sales and cannot be deleted")
	ErrCourseInactive = errors.New("course is not active")
)
