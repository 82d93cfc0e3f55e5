package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type enrollmentRepo struct {
	db *gorm.DB
}

var _ EnrollmentRepo = (*enrollmentRepo)(nil)

func (r *enrollmentRepo) Find(ctx context.Context, userID, courseID string) (*Enrollment, error) {
	var e Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &e, nil
}

func (r *enrollmentRepo) Create(ctx context.Context, e *Enrollment) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) Save(ctx context.Context, e *Enrollment) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("save enrollment: %w", err)
	}
	return nil
}
