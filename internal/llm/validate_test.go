package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-evaluation",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"sentiment": map[string]any{
				"type": "string",
				"enum": []any{"POSITIVE", "NEUTRAL", "NEGATIVE"},
			},
		},
		"required":             []any{"score", "sentiment"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"score": 85, "sentiment": "POSITIVE"}`, false},
		{"score out of range", `{"score": 150, "sentiment": "POSITIVE"}`, true},
		{"bad enum value", `{"score": 50, "sentiment": "MEH"}`, true},
		{"missing required", `{"score": 50}`, true},
		{"extra property", `{"score": 50, "sentiment": "NEUTRAL", "extra": 1}`, true},
		{"not JSON", `score: fine`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Errorf("err = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
