package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"labelproof/constants"
)

// SanitizeExtraction normalizes a model reply that is close to, but not
// exactly, the shape the schema demands, so the document can still validate:
//   - bare string values become {"value": ...}
//   - null / empty-value fields are dropped
//   - non-numeric or out-of-range confidences are dropped
//   - unknown keys are removed (strict additionalProperties friendliness)
//
// Only fields that fail the strict pass are touched. The returned slice lists
// what was dropped or rewritten, for logging.
func SanitizeExtraction(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	known := make(map[string]struct{}, len(constants.LabelFields))
	for _, name := range constants.LabelFields {
		known[name] = struct{}{}
	}

	var dropped []string
	for k, v := range m {
		if _, ok := known[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			// models occasionally flatten {"value": "x"} to "x"
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = map[string]any{"value": s}
				dropped = append(dropped, k+"(flattened)")
			}
		case map[string]any:
			if clean, ok := sanitizeField(t); ok {
				m[k] = clean
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(no value)")
			}
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

func sanitizeField(f map[string]any) (map[string]any, bool) {
	value, _ := f["value"].(string)
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}
	clean := map[string]any{"value": value}
	if c, ok := f["confidence"].(float64); ok && c >= 0 && c <= 1 {
		clean["confidence"] = c
	}
	return clean, true
}
