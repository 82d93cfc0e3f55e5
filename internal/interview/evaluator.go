package interview

import "context"

// Evaluator scores a free-text answer to an interview question. The
// contract is a pure function of (question, answer) returning a bounded
// score, textual feedback and a sentiment tag, so implementations can be
// swapped without touching callers.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string) (*Evaluation, error)
}

// Length thresholds for the heuristic evaluator, in bytes. Both bounds
// are inclusive on the low side of the next bucket.
const (
	shortAnswerMax  = 50
	mediumAnswerMax = 100
)

// LengthEvaluator is the deterministic placeholder scoring policy: answer
// length buckets map to fixed scores. It stands in for a model-backed
// evaluator and never fails, including on empty answers.
type LengthEvaluator struct{}

var _ Evaluator = LengthEvaluator{}

// Evaluate applies the length policy. The question text is part of the
// contract but unused by this heuristic.
func (LengthEvaluator) Evaluate(_ context.Context, _, answer string) (*Evaluation, error) {
	switch {
	case len(answer) <= shortAnswerMax:
		return &Evaluation{
			Score:     50,
			Feedback:  "Answer is too short.",
			Sentiment: SentimentNeutral,
		}, nil
	case len(answer) <= mediumAnswerMax:
		return &Evaluation{
			Score:     70,
			Feedback:  "Good points but elaborate more.",
			Sentiment: SentimentPositive,
		}, nil
	default:
		return &Evaluation{
			Score:     85,
			Feedback:  "Excellent, detailed answer using STAR method.",
			Sentiment: SentimentPositive,
		}, nil
	}
}
