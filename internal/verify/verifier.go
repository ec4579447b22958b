package verify

import (
	"labelproof/internal/vision"
)

// Result maps field name to comparison outcome for one verification run.
// Each run produces a fresh Result; re-verification replaces the prior one
// wholesale, never merges into it.
type Result map[string]FieldResult

// VerifyFields compares every declared field with a non-empty value against
// the extractor's reading of the same field. Fields the applicant left empty
// are skipped entirely and never appear in the result. Pure aggregation, no
// side effects.
func VerifyFields(declared map[string]string, extracted map[string]vision.Field) Result {
	result := make(Result, len(declared))
	for name, value := range declared {
		if value == "" {
			continue
		}
		var ext *vision.Field
		if f, ok := extracted[name]; ok {
			ext = &f
		}
		result[name] = MatchField(name, value, ext)
	}
	return result
}
