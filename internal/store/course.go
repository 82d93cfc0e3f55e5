package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type courseRepo struct {
	db *gorm.DB
}

var _ CourseRepo = (*courseRepo)(nil)

func (r *courseRepo) CourseTree(ctx context.Context, courseID string) (*Course, error) {
	var c Course
	err := r.db.WithContext(ctx).
		Preload("Modules.Lessons").
		First(&c, "id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load course tree: %w", err)
	}
	return &c, nil
}

func (r *courseRepo) CourseIDForLesson(ctx context.Context, lessonID string) (string, error) {
	var courseID string
	err := r.db.WithContext(ctx).
		Model(&Lesson{}).
		Select("modules.course_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("lessons.id = ?", lessonID).
		Scan(&courseID).Error
	if err != nil {
		return "", fmt.Errorf("resolve lesson course: %w", err)
	}
	return courseID, nil
}

func (r *courseRepo) CreateTree(ctx context.Context, c *Course) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}
