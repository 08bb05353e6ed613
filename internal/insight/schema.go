package insight

import "github.com/flowise/cycle-tracker/internal/domain"

// SchemaName identifies the response schema in structured output requests.
const SchemaName = "AIInsights"

// Schema returns the JSON schema of the expected model response.
func Schema() map[string]any {
	types := make([]string, 0, len(domain.InsightTypes))
	for _, t := range domain.InsightTypes {
		types = append(types, string(t))
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"insights": map[string]any{
				"type":     "array",
				"minItems": MinInsights,
				"maxItems": MaxInsights,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":       map[string]any{"type": "string", "enum": types},
						"title":      map[string]any{"type": "string", "minLength": 1},
						"content":    map[string]any{"type": "string", "minLength": 1},
						"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"actionable": map[string]any{"type": "boolean"},
					},
					"required":             []string{"type", "title", "content", "confidence", "actionable"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"insights"},
		"additionalProperties": false,
	}
}
