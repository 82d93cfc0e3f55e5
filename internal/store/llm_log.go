package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type llmLogRepo struct {
	db *gorm.DB
}

var _ LLMLogRepo = (*llmLogRepo)(nil)

func (r *llmLogRepo) Append(ctx context.Context, data LLMRequestData) error {
	row := LLMRequestLog{
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		CostUSD:      data.CostUSD,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append llm log: %w", err)
	}
	return nil
}

func (r *llmLogRepo) Recent(ctx context.Context, limit int) ([]LLMRequestLog, error) {
	var out []LLMRequestLog
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list llm logs: %w", err)
	}
	return out, nil
}
