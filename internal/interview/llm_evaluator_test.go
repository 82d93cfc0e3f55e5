package interview

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/techwell/techwell/internal/llm"
)

func TestLLMEvaluatorParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 78, "feedback": "Solid structure, add metrics.", "sentiment": "POSITIVE"}`),
	})
	ev := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	got, err := ev.Evaluate(context.Background(), "Design a cache.", "I would use an LRU...")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Score != 78 {
		t.Errorf("Score = %d, want 78", got.Score)
	}
	if got.Sentiment != SentimentPositive {
		t.Errorf("Sentiment = %s, want POSITIVE", got.Sentiment)
	}
	if got.Feedback != "Solid structure, add metrics." {
		t.Errorf("Feedback = %q", got.Feedback)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != EvaluationSchema {
		t.Error("request did not carry the evaluation schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Design a cache.") {
		t.Error("prompt does not include the question")
	}
}

func TestLLMEvaluatorClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 250, "feedback": "f", "sentiment": "POSITIVE"}`),
	})
	ev := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	got, err := ev.Evaluate(context.Background(), "q", "a")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Score != 100 {
		t.Errorf("Score = %d, want clamped 100", got.Score)
	}
}

func TestLLMEvaluatorFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> ErrProviderUnavailable
	ev := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	got, err := ev.Evaluate(context.Background(), "q", strings.Repeat("x", 120))
	if err != nil {
		t.Fatalf("Evaluate must not fail when the fallback can serve: %v", err)
	}
	// The length heuristic's verdict for a long answer.
	if got.Score != 85 {
		t.Errorf("fallback Score = %d, want 85", got.Score)
	}
}

func TestLLMEvaluatorUnknownSentimentDefaultsNeutral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 60, "feedback": "f", "sentiment": "AMBIVALENT"}`),
	})
	ev := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	got, err := ev.Evaluate(context.Background(), "q", "a")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Sentiment != SentimentNeutral {
		t.Errorf("Sentiment = %s, want NEUTRAL for unknown tag", got.Sentiment)
	}
}
