package projects

import "github.com/skillpath/skillpath/internal/llm"

// Schema defines the JSON schema for project ideas: a bare array of
// project objects. The 2-3 item range is requested in the prompt, not
// enforced here.
var Schema = &llm.Schema{
	Name:        "project-ideas",
	Description: "An array of practice project ideas for a curriculum module",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"requirements": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"techStack": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"skills": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"beginner", "intermediate", "advanced"},
				},
			},
			"required":             []any{"title", "description", "requirements", "techStack", "skills", "difficulty"},
			"additionalProperties": false,
		},
	},
}
