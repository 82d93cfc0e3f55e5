package interview

import (
	"context"
	"testing"

	"github.com/techwell/techwell/internal/store"
)

// mockBank implements store.QuestionRepo over a fixed slice.
type mockBank struct {
	questions []store.Question

	countCalls  []string // "domain/difficulty"
	offsetsSeen []int64
}

func (m *mockBank) matching(domain, difficulty string) []store.Question {
	var out []store.Question
	for _, q := range m.questions {
		if q.Domain == domain && q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

func (m *mockBank) Count(_ context.Context, domain, difficulty string) (int64, error) {
	m.countCalls = append(m.countCalls, domain+"/"+difficulty)
	return int64(len(m.matching(domain, difficulty))), nil
}

func (m *mockBank) ByOffset(_ context.Context, domain, difficulty string, offset int64) (*store.Question, error) {
	m.offsetsSeen = append(m.offsetsSeen, offset)
	pool := m.matching(domain, difficulty)
	if int(offset) >= len(pool) {
		return nil, nil
	}
	return &pool[offset], nil
}

func (m *mockBank) Create(_ context.Context, _ *store.Question) error { return nil }

func (m *mockBank) List(_ context.Context, _ string) ([]store.Question, error) { return nil, nil }

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		history []Turn
		want    Difficulty
	}{
		{"empty history", nil, DifficultyIntermediate},
		{"last score 81 moves up", []Turn{{Score: 81}}, DifficultyAdvanced},
		{"last score 100 moves up", []Turn{{Score: 100}}, DifficultyAdvanced},
		{"boundary 80 stays", []Turn{{Score: 80}}, DifficultyIntermediate},
		{"last score 39 moves down", []Turn{{Score: 39}}, DifficultyBeginner},
		{"boundary 40 stays", []Turn{{Score: 40}}, DifficultyIntermediate},
		{"unscored turn counts as zero", []Turn{{Score: 85}, {}}, DifficultyBeginner},
		{"only the last turn matters", []Turn{{Score: 10}, {Score: 10}, {Score: 95}}, DifficultyAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDifficulty(tt.history); got != tt.want {
				t.Errorf("NextDifficulty = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextQuestionPicksFromResolvedTier(t *testing.T) {
	bank := &mockBank{questions: []store.Question{
		{ID: "b1", Domain: "TECHNOLOGY", Difficulty: "BEGINNER", Topic: "T", Content: "easy"},
		{ID: "i1", Domain: "TECHNOLOGY", Difficulty: "INTERMEDIATE", Topic: "T", Content: "medium"},
		{ID: "a1", Domain: "TECHNOLOGY", Difficulty: "ADVANCED", Topic: "T", Content: "hard"},
	}}
	sel := NewSelector(bank)

	got, err := sel.NextQuestion(context.Background(), "TECHNOLOGY", []Turn{{Score: 90}})
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if got.Difficulty != DifficultyAdvanced {
		t.Errorf("Difficulty = %s, want ADVANCED", got.Difficulty)
	}
	if got.QuestionID != "a1" {
		t.Errorf("QuestionID = %s, want a1", got.QuestionID)
	}
}

func TestNextQuestionEmptyPoolFallsBack(t *testing.T) {
	bank := &mockBank{} // nothing in the bank at all
	sel := NewSelector(bank)

	for _, history := range [][]Turn{nil, {{Score: 90}}, {{Score: 10}}} {
		got, err := sel.NextQuestion(context.Background(), "POTTERY", history)
		if err != nil {
			t.Fatalf("NextQuestion: %v", err)
		}
		if got.Question != "Tell me about yourself." {
			t.Errorf("Question = %q, want generic fallback", got.Question)
		}
		if got.Topic != "Intro" {
			t.Errorf("Topic = %q, want Intro", got.Topic)
		}
		if got.Difficulty != NextDifficulty(history) {
			t.Errorf("fallback must keep the resolved difficulty, got %s", got.Difficulty)
		}
		if got.QuestionID != "" {
			t.Errorf("fallback QuestionID = %q, want empty", got.QuestionID)
		}
	}
}

func TestNextQuestionUsesUniformOffset(t *testing.T) {
	bank := &mockBank{questions: []store.Question{
		{ID: "q0", Domain: "D", Difficulty: "INTERMEDIATE", Content: "a"},
		{ID: "q1", Domain: "D", Difficulty: "INTERMEDIATE", Content: "b"},
		{ID: "q2", Domain: "D", Difficulty: "INTERMEDIATE", Content: "c"},
	}}
	sel := NewSelector(bank)

	// Drive the random source through every index and check the bound.
	for want := int64(0); want < 3; want++ {
		want := want
		sel.randInt = func(n int64) int64 {
			if n != 3 {
				t.Errorf("randInt bound = %d, want pool size 3", n)
			}
			return want
		}
		got, err := sel.NextQuestion(context.Background(), "D", nil)
		if err != nil {
			t.Fatalf("NextQuestion: %v", err)
		}
		if got.QuestionID != bank.questions[want].ID {
			t.Errorf("offset %d -> %s, want %s", want, got.QuestionID, bank.questions[want].ID)
		}
	}
}

func TestNextQuestionShrunkPoolFallsBack(t *testing.T) {
	// Count says 3 but the fetch misses: the pool shrank mid-call.
	bank := &mockBank{questions: []store.Question{
		{ID: "q0", Domain: "D", Difficulty: "INTERMEDIATE", Content: "a"},
	}}
	sel := NewSelector(bank)
	sel.randInt = func(n int64) int64 { return n - 1 }

	// Pretend a bigger pool by pointing the offset past the end.
	bank.questions = append(bank.questions,
		store.Question{ID: "q1", Domain: "D", Difficulty: "INTERMEDIATE", Content: "b"})
	sel.randInt = func(int64) int64 { return 99 }

	got, err := sel.NextQuestion(context.Background(), "D", nil)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if got.Question != "Tell me about yourself." {
		t.Errorf("Question = %q, want fallback on missed fetch", got.Question)
	}
}
