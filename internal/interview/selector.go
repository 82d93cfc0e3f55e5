package interview

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/techwell/techwell/internal/store"
)

// Difficulty thresholds applied to the most recent turn's score.
const (
	advancedAbove = 80 // score > 80 moves up
	beginnerBelow = 40 // score < 40 moves down
)

// The generic prompt used when the bank has no entry for the resolved
// (domain, difficulty) pair. An empty pool degrades, it never fails.
const (
	fallbackQuestion = "Tell me about yourself."
	fallbackTopic    = "Intro"
)

// Selector picks the next interview question at a difficulty adapted to
// the candidate's most recent answer. It keeps no cursor or session
// state: every call is a pure function of (domain, history) plus the
// current bank contents.
type Selector struct {
	bank store.QuestionRepo

	// randInt returns a uniform value in [0, n). Swapped in tests.
	randInt func(n int64) int64
}

// NewSelector creates a Selector over the given question bank.
func NewSelector(bank store.QuestionRepo) *Selector {
	return &Selector{
		bank:    bank,
		randInt: rand.Int64N,
	}
}

// NextDifficulty resolves the target difficulty from the history. Only
// the most recent turn matters, not a rolling average: an empty history
// starts at INTERMEDIATE, a strong last answer (score > 80) moves up to
// ADVANCED, a weak one (score < 40) moves down to BEGINNER.
func NextDifficulty(history []Turn) Difficulty {
	if len(history) == 0 {
		return DifficultyIntermediate
	}
	last := history[len(history)-1].Score
	switch {
	case last > advancedAbove:
		return DifficultyAdvanced
	case last < beginnerBelow:
		return DifficultyBeginner
	default:
		return DifficultyIntermediate
	}
}

// NextQuestion selects the next question for the domain, uniformly at
// random over all bank entries matching the resolved difficulty.
func (s *Selector) NextQuestion(ctx context.Context, domain string, history []Turn) (*Selection, error) {
	difficulty := NextDifficulty(history)

	count, err := s.bank.Count(ctx, domain, string(difficulty))
	if err != nil {
		return nil, fmt.Errorf("count question pool: %w", err)
	}
	if count == 0 {
		return fallbackSelection(difficulty), nil
	}

	q, err := s.bank.ByOffset(ctx, domain, string(difficulty), s.randInt(count))
	if err != nil {
		return nil, fmt.Errorf("pick question: %w", err)
	}
	if q == nil {
		// The pool shrank between count and fetch.
		return fallbackSelection(difficulty), nil
	}

	return &Selection{
		QuestionID: q.ID,
		Question:   q.Content,
		Difficulty: difficulty,
		Topic:      q.Topic,
	}, nil
}

func fallbackSelection(difficulty Difficulty) *Selection {
	return &Selection{
		Question:   fallbackQuestion,
		Difficulty: difficulty,
		Topic:      fallbackTopic,
	}
}
