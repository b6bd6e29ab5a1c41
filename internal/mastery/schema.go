package mastery

import "github.com/abhisek/secplus/internal/schema"

// ProgressSchema describes the persisted progress collection: an object
// mapping card ids to records.
var ProgressSchema = &schema.Schema{
	Name:        "progress",
	Description: "Per-card study progress keyed by card id",
	Definition: map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cardId":       map[string]any{"type": "string"},
				"timesCorrect": map[string]any{"type": "integer", "minimum": 0},
				"timesMissed":  map[string]any{"type": "integer", "minimum": 0},
				"lastSeen": map[string]any{
					"type":   []any{"string", "null"},
					"format": "date-time",
				},
				"mastered":    map[string]any{"type": "boolean"},
				"needsReview": map[string]any{"type": "boolean"},
			},
			"required": []any{"cardId"},
		},
	},
}
