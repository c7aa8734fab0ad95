package lesson

import "github.com/skillpath/skillpath/internal/llm"

// Schema defines the JSON schema for lesson generation. The 300-500 word
// content band is advisory and not enforced here.
var Schema = &llm.Schema{
	Name:        "lesson",
	Description: "A single lesson with objective, content, examples, and a practice task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":     map[string]any{"type": "string"},
			"objective": map[string]any{"type": "string"},
			"content": map[string]any{
				"type":        "string",
				"description": "Lesson body, 300-500 words of plain prose",
			},
			"examples": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"practiceTask": map[string]any{"type": "string"},
		},
		"required":             []any{"title", "objective", "content", "examples", "practiceTask"},
		"additionalProperties": false,
	},
}
