package quiz

import "github.com/skillpath/skillpath/internal/llm"

// Schema defines the JSON schema for quiz generation: a bare array of
// question objects. The prompt asks for exactly 5, but any array length
// that parses is accepted.
var Schema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "An array of multiple-choice questions for a lesson",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "integer", "minimum": 1},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correctAnswer": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 3,
				},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"id", "question", "options", "correctAnswer", "explanation"},
			"additionalProperties": false,
		},
	},
}
