package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/techwell/techwell/internal/store"
)

// CompletionInput carries the optional fields of a completion write.
// TimeSpentSec is added to the stored total; Score is only written when
// non-nil.
type CompletionInput struct {
	TimeSpentSec int
	Score        *float64
}

// CompletionResult reports the outcome of recording a completion.
// CourseCompleted is true only on the write that transitioned the
// enrollment; repeats of a fully completed course report false.
type CompletionResult struct {
	CourseID        string
	Progress        int
	CourseCompleted bool
}

// Service is the course progress engine. All reads and writes go through
// a CourseStore; completion writes additionally serialize per
// (userID, courseID) so that concurrent submissions cannot interleave
// the upsert, the recompute and the enrollment transition.
type Service struct {
	store store.CourseStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(cs store.CourseStore) *Service {
	return &Service{
		store: cs,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock acquires the per-(userID, courseID) mutex and returns its unlock.
// Entries are never removed; the key space is bounded by active learners
// in a single process.
func (s *Service) lock(userID, courseID string) func() {
	key := userID + "\x00" + courseID
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// GetCourseView returns the learner's view of a course: the published
// tree with lock state plus aggregate progress. The course must exist
// and the user must be enrolled.
func (s *Service) GetCourseView(ctx context.Context, userID, courseID string) (*CourseView, error) {
	return s.courseView(ctx, s.store, userID, courseID)
}

func (s *Service) courseView(ctx context.Context, cs store.CourseStore, userID, courseID string) (*CourseView, error) {
	course, err := cs.Courses().CourseTree(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("loading course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	enr, err := cs.Enrollments().Find(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}
	if enr == nil {
		return nil, ErrNotEnrolled
	}

	rows, err := cs.LessonProgressRows().ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("loading lesson progress: %w", err)
	}
	return BuildView(course, rows), nil
}

// RecordCompletion marks a lesson complete for the user and updates the
// enrollment. The stored view is recomputed inside the same transaction
// and is the sole authority for the reported progress; when it reaches
// 100 the enrollment transitions to COMPLETED exactly once.
//
// There are no internal retries. Time accumulation makes a blind retry
// unsafe; the caller decides whether to resubmit.
func (s *Service) RecordCompletion(ctx context.Context, userID, lessonID string, in CompletionInput) (*CompletionResult, error) {
	courseID, err := s.store.Courses().CourseIDForLesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("resolving lesson: %w", err)
	}
	if courseID == "" {
		return nil, ErrLessonNotFound
	}

	unlock := s.lock(userID, courseID)
	defer unlock()

	var result *CompletionResult
	err = s.store.Transact(ctx, func(tx store.CourseStore) error {
		enr, err := tx.Enrollments().Find(ctx, userID, courseID)
		if err != nil {
			return fmt.Errorf("loading enrollment: %w", err)
		}
		if enr == nil {
			return ErrNotEnrolled
		}

		now := time.Now().UTC()
		up := store.ProgressUpsert{
			UserID:          userID,
			LessonID:        lessonID,
			Completed:       true,
			AddTimeSpentSec: in.TimeSpentSec,
			Score:           in.Score,
			AccessedAt:      now,
		}
		if err := tx.LessonProgressRows().Upsert(ctx, up); err != nil {
			return fmt.Errorf("upserting lesson progress: %w", err)
		}

		view, err := s.courseView(ctx, tx, userID, courseID)
		if err != nil {
			return err
		}

		result = &CompletionResult{CourseID: courseID, Progress: view.Percent}
		if view.Percent == 100 {
			if enr.Status != store.EnrollmentCompleted {
				enr.Status = store.EnrollmentCompleted
				enr.Progress = 100
				enr.CompletedAt = &now
				if err := tx.Enrollments().Save(ctx, enr); err != nil {
					return fmt.Errorf("completing enrollment: %w", err)
				}
				result.CourseCompleted = true
			}
			return nil
		}

		enr.Progress = view.Percent
		if err := tx.Enrollments().Save(ctx, enr); err != nil {
			return fmt.Errorf("saving enrollment progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
