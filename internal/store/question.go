package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type questionRepo struct {
	db *gorm.DB
}

var _ QuestionRepo = (*questionRepo)(nil)

func (r *questionRepo) Count(ctx context.Context, domain, difficulty string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Question{}).
		Where("domain = ? AND difficulty = ?", domain, difficulty).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *questionRepo) ByOffset(ctx context.Context, domain, difficulty string, offset int64) (*Question, error) {
	var q Question
	err := r.db.WithContext(ctx).
		Where("domain = ? AND difficulty = ?", domain, difficulty).
		Order("id").
		Offset(int(offset)).
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("question by offset: %w", err)
	}
	return &q, nil
}

func (r *questionRepo) Create(ctx context.Context, q *Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *questionRepo) List(ctx context.Context, domain string) ([]Question, error) {
	var out []Question
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		Order("difficulty, topic, id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}
