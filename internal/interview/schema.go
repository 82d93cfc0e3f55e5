package interview

import "github.com/techwell/techwell/internal/llm"

// EvaluationSchema defines the JSON schema for model-backed answer
// scoring.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Structured evaluation of a candidate's interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall answer quality, 0-100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-3 sentences of actionable feedback for the candidate",
			},
			"sentiment": map[string]any{
				"type":        "string",
				"enum":        []any{"POSITIVE", "NEUTRAL", "NEGATIVE"},
				"description": "Overall tone of the assessment",
			},
		},
		"required":             []any{"score", "feedback", "sentiment"},
		"additionalProperties": false,
	},
}
