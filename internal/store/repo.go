package store

import (
	"context"
	"time"
)

// QuestionRepo provides read access to the question bank.
// Repositories return (nil, nil) for absent rows; callers own the mapping
// to their domain errors.
type QuestionRepo interface {
	// Count returns the number of bank entries for (domain, difficulty).
	Count(ctx context.Context, domain, difficulty string) (int64, error)

	// ByOffset returns the entry at the given offset within the
	// (domain, difficulty) set, ordered by ID for a stable scan.
	ByOffset(ctx context.Context, domain, difficulty string, offset int64) (*Question, error)

	// Create inserts a new bank entry.
	Create(ctx context.Context, q *Question) error

	// List returns all entries for a domain, every difficulty.
	List(ctx context.Context, domain string) ([]Question, error)
}

// CourseRepo provides read access to the course/module/lesson tree.
type CourseRepo interface {
	// CourseTree loads a course with all modules and lessons attached.
	// No ordering or publication filtering is applied here; the progress
	// engine owns that logic.
	CourseTree(ctx context.Context, courseID string) (*Course, error)

	// CourseIDForLesson resolves a lesson to its owning course via the
	// module relation. Returns "" if the lesson does not exist.
	CourseIDForLesson(ctx context.Context, lessonID string) (string, error)

	// CreateTree inserts a course together with its modules and lessons.
	CreateTree(ctx context.Context, c *Course) error
}

// ProgressUpsert describes one completion write. AddTimeSpentSec is added
// to the stored total rather than overwriting it; Score is only written
// when non-nil.
type ProgressUpsert struct {
	UserID          string
	LessonID        string
	Completed       bool
	AddTimeSpentSec int
	Score           *float64
	AccessedAt      time.Time
}

// LessonProgressRepo manages per-(user, lesson) completion rows.
type LessonProgressRepo interface {
	// Upsert creates or updates the (UserID, LessonID) row with the
	// accumulate-time semantics described on ProgressUpsert.
	Upsert(ctx context.Context, up ProgressUpsert) error

	// ForUserCourse returns the user's progress rows for every lesson in
	// the course, keyed by lesson ID.
	ForUserCourse(ctx context.Context, userID, courseID string) (map[string]*LessonProgress, error)
}

// EnrollmentRepo manages user/course enrollment records.
type EnrollmentRepo interface {
	// Find returns the enrollment for (userID, courseID), or nil if the
	// user is not enrolled.
	Find(ctx context.Context, userID, courseID string) (*Enrollment, error)

	// Create inserts a new enrollment.
	Create(ctx context.Context, e *Enrollment) error

	// Save persists changes to an existing enrollment.
	Save(ctx context.Context, e *Enrollment) error
}

// InterviewRepo persists mock interview sessions and their turns.
type InterviewRepo interface {
	CreateSession(ctx context.Context, s *InterviewSession) error
	AppendTurn(ctx context.Context, t *InterviewTurn) error
	EndSession(ctx context.Context, sessionID string, at time.Time) error
	Turns(ctx context.Context, sessionID string) ([]InterviewTurn, error)
}

// LLMRequestData captures the data for a single LLM request log entry.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
}

// LLMLogRepo records LLM request telemetry.
type LLMLogRepo interface {
	Append(ctx context.Context, data LLMRequestData) error
	Recent(ctx context.Context, limit int) ([]LLMRequestLog, error)
}

// CourseStore is the data-access capability the progress engine depends
// on. *Store implements it; tests substitute an in-memory fake.
type CourseStore interface {
	Courses() CourseRepo
	Enrollments() EnrollmentRepo
	LessonProgressRows() LessonProgressRepo

	// Transact runs fn atomically. Implementations must guarantee that
	// all repository calls made through the CourseStore passed to fn
	// either commit together or roll back together.
	Transact(ctx context.Context, fn func(CourseStore) error) error
}
