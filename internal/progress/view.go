package progress

import (
	"math"
	"sort"

	"github.com/techwell/techwell/internal/store"
)

// LessonView is one lesson as the learner sees it: content metadata plus
// their own completion and lock state.
type LessonView struct {
	ID           string
	Title        string
	Type         string
	Order        int
	DurationSec  int
	IsPreview    bool
	IsCompleted  bool
	IsLocked     bool
	Score        *float64
	TimeSpentSec int
}

// ModuleView groups the visible lessons of one module.
type ModuleView struct {
	ID         string
	Title      string
	OrderIndex int
	Lessons    []LessonView
}

// CourseView is the complete per-learner rendering of a course: the
// published tree with lock and completion state, plus the aggregate
// completion percentage.
type CourseView struct {
	CourseID    string
	Title       string
	Description string
	Modules     []ModuleView
	Completed   int
	Total       int
	Percent     int
}

// BuildView folds the course tree and the learner's progress rows into a
// CourseView. Pure: no I/O, deterministic for fixed inputs.
//
// Only published modules and lessons are visible, ordered by module
// OrderIndex then lesson Order. Locking runs on a single gate threaded
// through the whole lesson sequence: a lesson is locked unless the
// previous visible lesson was completed or the lesson itself is a
// preview. The gate starts open, does not reset at module boundaries,
// and always takes the current lesson's completed flag afterwards, so an
// uncompleted preview still locks its successor.
func BuildView(course *store.Course, rows map[string]*store.LessonProgress) *CourseView {
	view := &CourseView{
		CourseID:    course.ID,
		Title:       course.Title,
		Description: course.Description,
	}

	modules := make([]store.Module, 0, len(course.Modules))
	for _, m := range course.Modules {
		if m.IsPublished {
			modules = append(modules, m)
		}
	}
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].OrderIndex < modules[j].OrderIndex
	})

	prevCompleted := true
	for _, m := range modules {
		lessons := make([]store.Lesson, 0, len(m.Lessons))
		for _, l := range m.Lessons {
			if l.IsPublished {
				lessons = append(lessons, l)
			}
		}
		sort.SliceStable(lessons, func(i, j int) bool {
			return lessons[i].Order < lessons[j].Order
		})

		mv := ModuleView{ID: m.ID, Title: m.Title, OrderIndex: m.OrderIndex}
		for _, l := range lessons {
			lv := LessonView{
				ID:          l.ID,
				Title:       l.Title,
				Type:        l.Type,
				Order:       l.Order,
				DurationSec: l.DurationSec,
				IsPreview:   l.IsPreview,
			}
			if row := rows[l.ID]; row != nil {
				lv.IsCompleted = row.Completed
				lv.Score = row.Score
				lv.TimeSpentSec = row.TimeSpentSec
			}
			lv.IsLocked = !prevCompleted && !l.IsPreview
			prevCompleted = lv.IsCompleted

			view.Total++
			if lv.IsCompleted {
				view.Completed++
			}
			mv.Lessons = append(mv.Lessons, lv)
		}
		view.Modules = append(view.Modules, mv)
	}

	if view.Total > 0 {
		view.Percent = int(math.Round(float64(view.Completed) / float64(view.Total) * 100))
	}
	return view
}
