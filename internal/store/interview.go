package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type interviewRepo struct {
	db *gorm.DB
}

var _ InterviewRepo = (*interviewRepo)(nil)

func (r *interviewRepo) CreateSession(ctx context.Context, s *InterviewSession) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create interview session: %w", err)
	}
	return nil
}

func (r *interviewRepo) AppendTurn(ctx context.Context, t *InterviewTurn) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("append interview turn: %w", err)
	}
	return nil
}

func (r *interviewRepo) EndSession(ctx context.Context, sessionID string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&InterviewSession{}).
		Where("id = ?", sessionID).
		Update("ended_at", at).Error
	if err != nil {
		return fmt.Errorf("end interview session: %w", err)
	}
	return nil
}

func (r *interviewRepo) Turns(ctx context.Context, sessionID string) ([]InterviewTurn, error) {
	var out []InterviewTurn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("seq").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("load interview turns: %w", err)
	}
	return out, nil
}
