package content

import "github.com/abhisek/secplus/internal/schema"

var domainDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		"name":           map[string]any{"type": "string"},
		"examPercentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"description":    map[string]any{"type": "string"},
		"sections": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"id", "name", "examPercentage", "description", "sections"},
}

var flashcardDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"domain":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		"section": map[string]any{"type": "string"},
		"type": map[string]any{
			"enum": []any{"acronym", "concept", "tool", "process", "attack", "standard"},
		},
		"front": map[string]any{"type": "string"},
		"back": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"level1": map[string]any{"type": "string"},
				"level2": map[string]any{"type": "string"},
				"level3": map[string]any{"type": "string"},
			},
			"required": []any{"level1", "level2", "level3"},
		},
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"difficulty":     map[string]any{"enum": []any{"easy", "medium", "hard"}},
				"commonlyTested": map[string]any{"type": "boolean"},
				"relatedTerms": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"difficulty", "commonlyTested"},
		},
	},
	"required": []any{"id", "domain", "section", "type", "front", "back", "metadata"},
}

// DomainsSchema validates domains.json.
var DomainsSchema = &schema.Schema{
	Name:        "domains",
	Description: "Exam domain catalog",
	Definition: map[string]any{
		"type":  "array",
		"items": domainDef,
	},
}

// FlashcardsSchema validates one flashcards_domain<N>.json document.
var FlashcardsSchema = &schema.Schema{
	Name:        "flashcards",
	Description: "Flashcards for a single domain",
	Definition: map[string]any{
		"type":  "array",
		"items": flashcardDef,
	},
}

// ManifestSchema validates manifest.json.
var ManifestSchema = &schema.Schema{
	Name:        "content-manifest",
	Description: "Content bundle manifest",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"format":  map[string]any{"type": "string"},
			"title":   map[string]any{"type": "string"},
			"updated": map[string]any{"type": "string"},
		},
		"required": []any{"format", "title"},
	},
}
