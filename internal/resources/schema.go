package resources

import "github.com/skillpath/skillpath/internal/llm"

// Schema defines the JSON schema for resource recommendations: a bare
// array of resource objects. The 8-10 item range is requested in the
// prompt, not enforced here.
var Schema = &llm.Schema{
	Name:        "resource-list",
	Description: "An array of recommended learning resources for a topic",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []any{"book", "course", "article", "video"},
				},
				"title":         map[string]any{"type": "string"},
				"author":        map[string]any{"type": "string"},
				"level":         map[string]any{"type": "string"},
				"estimatedTime": map[string]any{"type": "string"},
				"reason":        map[string]any{"type": "string"},
				"description":   map[string]any{"type": "string"},
				"url": map[string]any{
					"type":        "string",
					"description": `A real URL, or "#" when none is known`,
				},
			},
			"required":             []any{"type", "title", "level", "reason", "description", "url"},
			"additionalProperties": false,
		},
	},
}
