package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type lessonProgressRepo struct {
	db *gorm.DB
}

var _ LessonProgressRepo = (*lessonProgressRepo)(nil)

// Upsert creates or updates the (user, lesson) row. The unique index on
// (user_id, lesson_id) drives the conflict clause; time spent is added to
// the stored total, never overwritten.
func (r *lessonProgressRepo) Upsert(ctx context.Context, up ProgressUpsert) error {
	row := LessonProgress{
		UserID:         up.UserID,
		LessonID:       up.LessonID,
		Completed:      up.Completed,
		Score:          up.Score,
		TimeSpentSec:   up.AddTimeSpentSec,
		LastAccessedAt: up.AccessedAt,
	}

	assignments := map[string]any{
		"completed":        gorm.Expr("completed OR ?", up.Completed),
		"time_spent_sec":   gorm.Expr("time_spent_sec + ?", up.AddTimeSpentSec),
		"last_accessed_at": up.AccessedAt,
		"updated_at":       up.AccessedAt,
	}
	if up.Score != nil {
		assignments["score"] = *up.Score
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert lesson progress: %w", err)
	}
	return nil
}

func (r *lessonProgressRepo) ForUserCourse(ctx context.Context, userID, courseID string) (map[string]*LessonProgress, error) {
	var rows []LessonProgress
	err := r.db.WithContext(ctx).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("lesson_progress.user_id = ? AND modules.course_id = ?", userID, courseID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load lesson progress: %w", err)
	}

	out := make(map[string]*LessonProgress, len(rows))
	for i := range rows {
		out[rows[i].LessonID] = &rows[i]
	}
	return out, nil
}
