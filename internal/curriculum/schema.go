package curriculum

import "github.com/skillpath/skillpath/internal/llm"

// Schema defines the JSON schema for curriculum generation. Counts
// (module, topic, roadmap lengths) are requested in the prompt but not
// enforced here: a structurally valid reply with a deviating count is
// accepted as-is.
var Schema = &llm.Schema{
	Name:        "curriculum",
	Description: "A structured learning curriculum with modules, topics, and a weekly roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":             map[string]any{"type": "string"},
						"title":          map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string"},
						"estimatedWeeks": map[string]any{"type": "integer", "minimum": 1},
						"topics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":          map[string]any{"type": "string"},
									"title":       map[string]any{"type": "string"},
									"description": map[string]any{"type": "string"},
									"difficulty": map[string]any{
										"type": "string",
										"enum": []any{"beginner", "intermediate", "advanced"},
									},
									"subtopics": map[string]any{
										"type": "array",
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"id":             map[string]any{"type": "string"},
												"title":          map[string]any{"type": "string"},
												"description":    map[string]any{"type": "string"},
												"estimatedHours": map[string]any{"type": "number", "minimum": 0},
											},
											"required":             []any{"id", "title", "description", "estimatedHours"},
											"additionalProperties": false,
										},
									},
								},
								"required":             []any{"id", "title", "description", "difficulty", "subtopics"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"id", "title", "description", "estimatedWeeks", "topics"},
					"additionalProperties": false,
				},
			},
			"weeklyRoadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week":     map[string]any{"type": "integer", "minimum": 1},
						"topicIds": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"hours":    map[string]any{"type": "number", "minimum": 0},
						"goals":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required":             []any{"week", "topicIds", "hours", "goals"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules", "weeklyRoadmap"},
		"additionalProperties": false,
	},
}
