package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/techwell/techwell/internal/store"
)

// fakeStore is an in-memory CourseStore. Transact runs the function
// directly; the service's own serialization keeps state consistent.
type fakeStore struct {
	course      *store.Course
	enrollments map[string]*store.Enrollment     // userID|courseID
	progress    map[string]*store.LessonProgress // userID|lessonID
}

func newFakeStore(course *store.Course) *fakeStore {
	return &fakeStore{
		course:      course,
		enrollments: make(map[string]*store.Enrollment),
		progress:    make(map[string]*store.LessonProgress),
	}
}

func (f *fakeStore) enroll(userID string) {
	key := userID + "|" + f.course.ID
	f.enrollments[key] = &store.Enrollment{
		ID: "e-" + userID, UserID: userID, CourseID: f.course.ID,
		Status: store.EnrollmentActive,
	}
}

func (f *fakeStore) Courses() store.CourseRepo                    { return f }
func (f *fakeStore) Enrollments() store.EnrollmentRepo            { return f }
func (f *fakeStore) LessonProgressRows() store.LessonProgressRepo { return f }

func (f *fakeStore) Transact(_ context.Context, fn func(store.CourseStore) error) error {
	return fn(f)
}

func (f *fakeStore) CourseTree(_ context.Context, courseID string) (*store.Course, error) {
	if f.course == nil || f.course.ID != courseID {
		return nil, nil
	}
	return f.course, nil
}

func (f *fakeStore) CourseIDForLesson(_ context.Context, lessonID string) (string, error) {
	if f.course == nil {
		return "", nil
	}
	for _, m := range f.course.Modules {
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return f.course.ID, nil
			}
		}
	}
	return "", nil
}

func (f *fakeStore) CreateTree(_ context.Context, c *store.Course) error {
	f.course = c
	return nil
}

func (f *fakeStore) Find(_ context.Context, userID, courseID string) (*store.Enrollment, error) {
	return f.enrollments[userID+"|"+courseID], nil
}

func (f *fakeStore) Create(_ context.Context, e *store.Enrollment) error {
	f.enrollments[e.UserID+"|"+e.CourseID] = e
	return nil
}

func (f *fakeStore) Save(_ context.Context, e *store.Enrollment) error {
	f.enrollments[e.UserID+"|"+e.CourseID] = e
	return nil
}

func (f *fakeStore) Upsert(_ context.Context, up store.ProgressUpsert) error {
	key := up.UserID + "|" + up.LessonID
	row, ok := f.progress[key]
	if !ok {
		row = &store.LessonProgress{UserID: up.UserID, LessonID: up.LessonID}
		f.progress[key] = row
	}
	row.Completed = row.Completed || up.Completed
	row.TimeSpentSec += up.AddTimeSpentSec
	row.LastAccessedAt = up.AccessedAt
	if up.Score != nil {
		row.Score = up.Score
	}
	return nil
}

func (f *fakeStore) ForUserCourse(_ context.Context, userID, courseID string) (map[string]*store.LessonProgress, error) {
	if f.course == nil || f.course.ID != courseID {
		return nil, nil
	}
	out := make(map[string]*store.LessonProgress)
	for _, m := range f.course.Modules {
		for _, l := range m.Lessons {
			if row := f.progress[userID+"|"+l.ID]; row != nil {
				out[l.ID] = row
			}
		}
	}
	return out, nil
}

func TestRecordCompletionAccumulatesTime(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	fs.enroll("u1")
	svc := NewService(fs)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, "u1", "l1", CompletionInput{TimeSpentSec: 120}); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	score := 88.0
	if _, err := svc.RecordCompletion(ctx, "u1", "l1", CompletionInput{TimeSpentSec: 60, Score: &score}); err != nil {
		t.Fatalf("second completion: %v", err)
	}

	row := fs.progress["u1|l1"]
	if row.TimeSpentSec != 180 {
		t.Errorf("TimeSpentSec = %d, want 180", row.TimeSpentSec)
	}
	if row.Score == nil || *row.Score != 88.0 {
		t.Errorf("Score = %v, want 88", row.Score)
	}
	if !row.Completed {
		t.Error("row not completed")
	}
}

func TestRecordCompletionCascade(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	fs.enroll("u1")
	svc := NewService(fs)
	ctx := context.Background()

	res, err := svc.RecordCompletion(ctx, "u1", "l1", CompletionInput{})
	if err != nil {
		t.Fatalf("l1: %v", err)
	}
	if res.Progress != 33 || res.CourseCompleted {
		t.Errorf("after l1: %+v", res)
	}

	res, err = svc.RecordCompletion(ctx, "u1", "l2", CompletionInput{})
	if err != nil {
		t.Fatalf("l2: %v", err)
	}
	if res.Progress != 67 || res.CourseCompleted {
		t.Errorf("after l2: %+v", res)
	}

	enr := fs.enrollments["u1|c1"]
	if enr.Progress != 67 || enr.Status != store.EnrollmentActive {
		t.Errorf("enrollment mid-course: %+v", enr)
	}

	res, err = svc.RecordCompletion(ctx, "u1", "l3", CompletionInput{})
	if err != nil {
		t.Fatalf("l3: %v", err)
	}
	if res.Progress != 100 || !res.CourseCompleted {
		t.Errorf("after l3: %+v", res)
	}
	if enr.Status != store.EnrollmentCompleted || enr.Progress != 100 || enr.CompletedAt == nil {
		t.Errorf("enrollment after completion: %+v", enr)
	}
}

func TestRecordCompletionIdempotentAfterCompleted(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	fs.enroll("u1")
	svc := NewService(fs)
	ctx := context.Background()

	for _, id := range []string{"l1", "l2", "l3"} {
		if _, err := svc.RecordCompletion(ctx, "u1", id, CompletionInput{}); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
	}
	stamped := fs.enrollments["u1|c1"].CompletedAt
	if stamped == nil {
		t.Fatal("CompletedAt not stamped")
	}

	time.Sleep(5 * time.Millisecond)
	res, err := svc.RecordCompletion(ctx, "u1", "l3", CompletionInput{TimeSpentSec: 30})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if res.CourseCompleted {
		t.Error("resubmit reported CourseCompleted")
	}
	if got := fs.enrollments["u1|c1"].CompletedAt; got != stamped {
		t.Errorf("CompletedAt changed on resubmit: %v -> %v", stamped, got)
	}
	// The write itself still lands.
	if fs.progress["u1|l3"].TimeSpentSec != 30 {
		t.Errorf("TimeSpentSec = %d, want 30", fs.progress["u1|l3"].TimeSpentSec)
	}
}

func TestRecordCompletionExactlyOnceUnderConcurrency(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	fs.enroll("u1")
	svc := NewService(fs)
	ctx := context.Background()

	for _, id := range []string{"l1", "l2"} {
		if _, err := svc.RecordCompletion(ctx, "u1", id, CompletionInput{}); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
	}

	const n = 16
	results := make([]*CompletionResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.RecordCompletion(ctx, "u1", "l3", CompletionInput{})
			if err != nil {
				t.Errorf("goroutine %d: %v", i, err)
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	completions := 0
	for _, res := range results {
		if res != nil && res.CourseCompleted {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("CourseCompleted reported %d times, want exactly 1", completions)
	}
}

func TestRecordCompletionErrors(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	svc := NewService(fs)
	ctx := context.Background()

	_, err := svc.RecordCompletion(ctx, "u1", "nope", CompletionInput{})
	if !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("unknown lesson: %v, want ErrLessonNotFound", err)
	}

	_, err = svc.RecordCompletion(ctx, "u1", "l1", CompletionInput{})
	if !errors.Is(err, ErrNotEnrolled) {
		t.Errorf("no enrollment: %v, want ErrNotEnrolled", err)
	}
}

func TestGetCourseViewErrors(t *testing.T) {
	fs := newFakeStore(threeLessonCourse())
	svc := NewService(fs)
	ctx := context.Background()

	_, err := svc.GetCourseView(ctx, "u1", "missing")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("unknown course: %v, want ErrCourseNotFound", err)
	}

	_, err = svc.GetCourseView(ctx, "u1", "c1")
	if !errors.Is(err, ErrNotEnrolled) {
		t.Errorf("no enrollment: %v, want ErrNotEnrolled", err)
	}

	fs.enroll("u1")
	v, err := svc.GetCourseView(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("enrolled view: %v", err)
	}
	if v.Total != 3 || v.Percent != 0 {
		t.Errorf("view = total %d percent %d", v.Total, v.Percent)
	}
}
