package vision

import (
	"labelproof/constants"
)

// BuildLabelJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it
// locally to validate. Every label field is optional; the extractor reports
// only what it can actually read off the image.
func BuildLabelJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.LabelFields))
	for _, name := range constants.LabelFields {
		props[name] = fieldProp()
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func fieldProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":      map[string]any{"type": "string", "minLength": 1},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"value"},
	}
}
