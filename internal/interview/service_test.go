package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techwell/techwell/internal/store"
)

// mockInterviewRepo records sessions and turns in memory.
type mockInterviewRepo struct {
	sessions []*store.InterviewSession
	turns    []*store.InterviewTurn
	ended    []string
}

func (m *mockInterviewRepo) CreateSession(_ context.Context, s *store.InterviewSession) error {
	s.ID = "sess-1"
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *mockInterviewRepo) AppendTurn(_ context.Context, t *store.InterviewTurn) error {
	m.turns = append(m.turns, t)
	return nil
}

func (m *mockInterviewRepo) EndSession(_ context.Context, id string, _ time.Time) error {
	m.ended = append(m.ended, id)
	return nil
}

func (m *mockInterviewRepo) Turns(_ context.Context, _ string) ([]store.InterviewTurn, error) {
	return nil, nil
}

func newTestService(repo *mockInterviewRepo) *Service {
	bank := &mockBank{questions: []store.Question{
		{ID: "b1", Domain: "TECHNOLOGY", Difficulty: "BEGINNER", Topic: "T", Content: "easy one"},
		{ID: "i1", Domain: "TECHNOLOGY", Difficulty: "INTERMEDIATE", Topic: "T", Content: "medium one"},
		{ID: "a1", Domain: "TECHNOLOGY", Difficulty: "ADVANCED", Topic: "T", Content: "hard one"},
	}}
	return NewService(NewSelector(bank), LengthEvaluator{}, repo)
}

func TestServiceTurnLoopAdaptsDifficulty(t *testing.T) {
	repo := &mockInterviewRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	sess, err := svc.Begin(ctx, "user-1", "TECHNOLOGY")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// First question starts at INTERMEDIATE.
	sel, err := svc.Ask(ctx, sess)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if sel.Difficulty != DifficultyIntermediate {
		t.Errorf("first difficulty = %s, want INTERMEDIATE", sel.Difficulty)
	}

	// A long answer scores 85, so the next turn is ADVANCED.
	eval, err := svc.Submit(ctx, sess, string(make([]byte, 150)))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if eval.Score != 85 {
		t.Errorf("Score = %d, want 85", eval.Score)
	}

	sel, err = svc.Ask(ctx, sess)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if sel.Difficulty != DifficultyAdvanced {
		t.Errorf("second difficulty = %s, want ADVANCED", sel.Difficulty)
	}

	if len(sess.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(sess.History()))
	}
	if len(repo.turns) != 1 {
		t.Fatalf("persisted turns = %d, want 1", len(repo.turns))
	}
	if repo.turns[0].Seq != 1 || repo.turns[0].Score != 85 {
		t.Errorf("turn row = %+v", repo.turns[0])
	}
}

func TestServiceSubmitWithoutAsk(t *testing.T) {
	svc := newTestService(&mockInterviewRepo{})
	ctx := context.Background()

	sess, err := svc.Begin(ctx, "user-1", "TECHNOLOGY")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	_, err = svc.Submit(ctx, sess, "answer")
	if !errors.Is(err, ErrNoPendingQuestion) {
		t.Errorf("err = %v, want ErrNoPendingQuestion", err)
	}
}

func TestServiceEnd(t *testing.T) {
	repo := &mockInterviewRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	sess, _ := svc.Begin(ctx, "user-1", "TECHNOLOGY")
	if err := svc.End(ctx, sess); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(repo.ended) != 1 || repo.ended[0] != sess.ID {
		t.Errorf("ended sessions = %v", repo.ended)
	}
}
