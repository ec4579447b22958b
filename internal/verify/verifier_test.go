package verify

import (
	"testing"

	"labelproof/constants"
	"labelproof/internal/vision"
)

func TestVerifyFieldsSkipsEmptyDeclaredValues(t *testing.T) {
	declared := map[string]string{
		constants.FieldBrandName:    "Old Tom",
		constants.FieldFancifulName: "",
	}
	extracted := map[string]vision.Field{
		constants.FieldBrandName:    {Value: "Old Tom", Confidence: 0.95},
		constants.FieldFancifulName: {Value: "Something", Confidence: 0.4},
	}

	result := VerifyFields(declared, extracted)
	if len(result) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(result), result)
	}
	if _, ok := result[constants.FieldFancifulName]; ok {
		t.Fatalf("empty declared field must not appear in the result")
	}
	if fr := result[constants.FieldBrandName]; fr.Category != constants.MatchExact {
		t.Fatalf("expected match for brand_name, got %+v", fr)
	}
}

func TestVerifyFieldsMissingExtractionIsNotFound(t *testing.T) {
	declared := map[string]string{
		constants.FieldBrandName:   "Old Tom",
		constants.FieldNetContents: "750 mL",
	}
	extracted := map[string]vision.Field{
		constants.FieldBrandName: {Value: "Old Tom"},
	}

	result := VerifyFields(declared, extracted)
	if fr := result[constants.FieldNetContents]; fr.Category != constants.MatchNotFound {
		t.Fatalf("expected not_found for net_contents, got %+v", fr)
	}
}

func TestVerifyFieldsProducesFreshResultPerRun(t *testing.T) {
	declared := map[string]string{constants.FieldBrandName: "Old Tom"}

	first := VerifyFields(declared, map[string]vision.Field{
		constants.FieldBrandName: {Value: "New Tom"},
	})
	second := VerifyFields(declared, map[string]vision.Field{
		constants.FieldBrandName: {Value: "Old Tom"},
	})

	if first[constants.FieldBrandName].Category != constants.MatchHardMismatch {
		t.Fatalf("first run expected hard_mismatch, got %+v", first)
	}
	if second[constants.FieldBrandName].Category != constants.MatchExact {
		t.Fatalf("re-run must fully replace the prior outcome, got %+v", second)
	}
}
