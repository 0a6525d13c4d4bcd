package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const profileSchemaName = "pecusnet.herd_profile.json"

var profileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"brand": map[string]any{"type": "string", "minLength": 1},
		"herd": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"heads":             map[string]any{"type": "integer", "minimum": 0},
				"average_weight_kg": map[string]any{"type": "number", "exclusiveMinimum": 0},
				"price_per_arroba":  map[string]any{"type": "number", "minimum": 0},
				"weight_rmse_kg":    map[string]any{"type": "number", "minimum": 0},
				"daily_gain_kg":     map[string]any{"type": "number"},
				"herd_growth_pct":   map[string]any{"type": "number"},
			},
			"additionalProperties": false,
		},
		"classification": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"label", "count"},
				"properties": map[string]any{
					"label":     map[string]any{"type": "string", "minLength": 1},
					"count":     map[string]any{"type": "integer", "minimum": 0},
					"finishing": map[string]any{"type": "boolean"},
				},
				"additionalProperties": false,
			},
		},
		"morphology": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"axes":     map[string]any{"type": "array", "minItems": 3, "items": map[string]any{"type": "string"}},
				"current":  map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				"standard": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				"max":      map[string]any{"type": "number", "exclusiveMinimum": 0},
			},
			"additionalProperties": false,
		},
		"scatter": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"count": map[string]any{"type": "integer", "minimum": 1, "maximum": 5000},
				"bounds": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"x_min": map[string]any{"type": "number"},
						"x_max": map[string]any{"type": "number"},
						"y_min": map[string]any{"type": "number"},
						"y_max": map[string]any{"type": "number"},
					},
					"additionalProperties": false,
				},
			},
			"additionalProperties": false,
		},
	},
	"additionalProperties": false,
}

var (
	profileSchemaOnce     sync.Once
	profileSchemaCompiled *jsonschema.Schema
	profileSchemaErr      error
)

func compiledProfileSchema() (*jsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		data, err := json.Marshal(profileSchema)
		if err != nil {
			profileSchemaErr = fmt.Errorf("dashboard: marshal profile schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(profileSchemaName, bytes.NewReader(data)); err != nil {
			profileSchemaErr = fmt.Errorf("dashboard: load profile schema: %w", err)
			return
		}
		profileSchemaCompiled, profileSchemaErr = compiler.Compile(profileSchemaName)
		if profileSchemaErr != nil {
			profileSchemaErr = fmt.Errorf("dashboard: compile profile schema: %w", profileSchemaErr)
		}
	})
	return profileSchemaCompiled, profileSchemaErr
}

// validateProfileDocument checks a decoded YAML document against the profile schema.
func validateProfileDocument(doc map[string]any) error {
	schema, err := compiledProfileSchema()
	if err != nil {
		return err
	}
	var payload any = map[string]any{}
	if doc != nil {
		// round-trip through JSON so yaml ints/floats match what the validator expects
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("dashboard: marshal profile: %w", err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("dashboard: normalize profile: %w", err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("dashboard: profile failed validation: %w", err)
	}
	return nil
}
