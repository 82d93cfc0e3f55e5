package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/techwell/techwell/internal/llm"
)

const evaluatorSystemPrompt = `You are an experienced technical interviewer assessing a candidate's answer in a mock interview. Score strictly but fairly, and give feedback the candidate can act on. Reward concrete examples and structured answers (situation, task, action, result); penalize vagueness and padding.`

// EvaluatorConfig tunes the model-backed evaluator.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns config suitable for short evaluations.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMEvaluator scores answers with an LLM through the same Evaluator
// contract as the heuristic. Provider failures degrade to the length
// heuristic so an interview never stalls on a flaky backend.
type LLMEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
	fallback LengthEvaluator
}

var _ Evaluator = (*LLMEvaluator)(nil)

// NewLLMEvaluator creates a model-backed evaluator.
func NewLLMEvaluator(provider llm.Provider, cfg EvaluatorConfig) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, cfg: cfg}
}

type evaluationOutput struct {
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Sentiment string `json:"sentiment"`
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, question, answer string) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationMessage(question, answer)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM evaluation failed, using heuristic: %v\n", err)
		return e.fallback.Evaluate(ctx, question, answer)
	}

	var out evaluationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unparseable evaluation, using heuristic: %v\n", err)
		return e.fallback.Evaluate(ctx, question, answer)
	}

	return &Evaluation{
		Score:     clampScore(out.Score),
		Feedback:  out.Feedback,
		Sentiment: parseSentiment(out.Sentiment),
	}, nil
}

func buildEvaluationMessage(question, answer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question:\n%s\n\n", question))
	if answer == "" {
		b.WriteString("Answer: (the candidate gave no answer)\n")
	} else {
		b.WriteString(fmt.Sprintf("Answer:\n%s\n", answer))
	}

	b.WriteString(`
Instructions:
1. Score the answer 0-100 for correctness, depth and structure.
2. Write 2-3 sentences of feedback naming one strength and one concrete improvement.
3. Tag the overall assessment POSITIVE, NEUTRAL or NEGATIVE.`)

	return b.String()
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func parseSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s)
	default:
		return SentimentNeutral
	}
}
