package progress

import "errors"

var (
	// ErrCourseNotFound means the course does not exist.
	ErrCourseNotFound = errors.New("course not found")

	// ErrLessonNotFound means the lesson does not exist.
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrNotEnrolled means the user has no enrollment for the course. It is
	// a precondition failure, not a missing resource.
	ErrNotEnrolled = errors.New("user is not enrolled in this course")
)
