package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema describes a catalog document: a format version plus a
// flat topic list. It checks per-topic shape only; rules that need the
// whole graph (dangling prerequisites, cycles) are Audit's job.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format": map[string]any{
			"type":    "string",
			"pattern": `^v\d+\.\d+\.\d+$`,
		},
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"grade": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"subject": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced", "mastery"},
					},
					"estimated_hours": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
					},
					"prerequisites": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"skills": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"sort_order": map[string]any{
						"type": "integer",
					},
					"active": map[string]any{
						"type": "boolean",
					},
				},
				"required":             []any{"id", "name", "grade", "subject", "difficulty", "estimated_hours"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format", "topics"},
	"additionalProperties": false,
}

var (
	catalogSchemaOnce     sync.Once
	catalogSchemaCompiled *jsonschema.Schema
	catalogSchemaErr      error
)

// compiledCatalogSchema compiles catalogSchema on first use.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	catalogSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			catalogSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			catalogSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			catalogSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		catalogSchemaCompiled, catalogSchemaErr = c.Compile(schemaURL)
	})
	return catalogSchemaCompiled, catalogSchemaErr
}
