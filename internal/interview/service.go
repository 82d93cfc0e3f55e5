package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techwell/techwell/internal/store"
)

// ErrNoPendingQuestion is returned by Submit when no question has been
// asked since the last answer.
var ErrNoPendingQuestion = errors.New("no pending question in this session")

// Service runs mock interview sessions: ask, answer, score, repeat. The
// selector and evaluator stay stateless; the service owns the in-memory
// history and persists each exchange as an append-only turn row.
type Service struct {
	selector  *Selector
	evaluator Evaluator
	sessions  store.InterviewRepo
}

// NewService creates an interview session service.
func NewService(selector *Selector, evaluator Evaluator, sessions store.InterviewRepo) *Service {
	return &Service{
		selector:  selector,
		evaluator: evaluator,
		sessions:  sessions,
	}
}

// Session is the in-memory state of one running interview.
type Session struct {
	ID     string
	UserID string
	Domain string

	history []Turn
	seq     int
	pending *Selection
}

// History returns the ordered turn history so far.
func (s *Session) History() []Turn {
	return s.history
}

// Begin starts a new session for the user in the given domain.
func (s *Service) Begin(ctx context.Context, userID, domain string) (*Session, error) {
	row := &store.InterviewSession{
		UserID:    userID,
		Domain:    domain,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessions.CreateSession(ctx, row); err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return &Session{
		ID:     row.ID,
		UserID: userID,
		Domain: domain,
	}, nil
}

// Ask selects the next question for the session. Asking again before the
// previous question is answered replaces it.
func (s *Service) Ask(ctx context.Context, sess *Session) (*Selection, error) {
	sel, err := s.selector.NextQuestion(ctx, sess.Domain, sess.history)
	if err != nil {
		return nil, err
	}
	sess.pending = sel
	return sel, nil
}

// Submit scores the answer to the pending question, appends the turn to
// the session history and persists it.
func (s *Service) Submit(ctx context.Context, sess *Session, answer string) (*Evaluation, error) {
	if sess.pending == nil {
		return nil, ErrNoPendingQuestion
	}
	sel := sess.pending

	eval, err := s.evaluator.Evaluate(ctx, sel.Question, answer)
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}

	sess.seq++
	turn := &store.InterviewTurn{
		SessionID:  sess.ID,
		Seq:        sess.seq,
		QuestionID: sel.QuestionID,
		Question:   sel.Question,
		Answer:     answer,
		Score:      eval.Score,
		Feedback:   eval.Feedback,
		Sentiment:  string(eval.Sentiment),
	}
	if err := s.sessions.AppendTurn(ctx, turn); err != nil {
		return nil, fmt.Errorf("record turn: %w", err)
	}

	sess.history = append(sess.history, Turn{
		QuestionID: sel.QuestionID,
		Score:      eval.Score,
	})
	sess.pending = nil

	return eval, nil
}

// End closes the session.
func (s *Service) End(ctx context.Context, sess *Session) error {
	if err := s.sessions.EndSession(ctx, sess.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}
