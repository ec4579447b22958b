package verify

import (
	"testing"

	"labelproof/constants"
	"labelproof/internal/vision"
)

func extractedValue(v string) *vision.Field {
	return &vision.Field{Value: v, Confidence: 0.9}
}

func TestMatchFieldExact(t *testing.T) {
	res := MatchField(constants.FieldBrandName, "Old Tom", extractedValue("Old Tom"))
	if !res.Matched || res.Category != constants.MatchExact {
		t.Fatalf("expected exact match, got %+v", res)
	}
	if res.DeclaredValue != "Old Tom" || res.ExtractedValue != "Old Tom" {
		t.Fatalf("expected both values carried, got %+v", res)
	}
}

func TestMatchFieldCaseOnlyDifferenceIsSoft(t *testing.T) {
	res := MatchField(constants.FieldBrandName, "OLD TOM", extractedValue("old tom"))
	if res.Matched {
		t.Fatalf("normalized-equal but not byte-equal must not count as matched: %+v", res)
	}
	if res.Category != constants.MatchSoftMismatch {
		t.Fatalf("expected soft_mismatch, got %s", res.Category)
	}
}

func TestMatchFieldPunctuationOnlyDifferenceIsSoft(t *testing.T) {
	res := MatchField(constants.FieldAlcoholContent, "45%", extractedValue("45% Alc./Vol."))
	if res.Category != constants.MatchSoftMismatch {
		t.Fatalf("expected soft_mismatch for superset phrase, got %+v", res)
	}
}

func TestMatchFieldHardMismatch(t *testing.T) {
	res := MatchField(constants.FieldBrandName, "Old Tom", extractedValue("New Tom"))
	if res.Matched || res.Category != constants.MatchHardMismatch {
		t.Fatalf("expected hard_mismatch, got %+v", res)
	}
}

func TestMatchFieldNotFound(t *testing.T) {
	for _, ext := range []*vision.Field{nil, extractedValue("")} {
		res := MatchField(constants.FieldNetContents, "750 mL", ext)
		if res.Matched || res.Category != constants.MatchNotFound {
			t.Fatalf("expected not_found for extracted=%v, got %+v", ext, res)
		}
		if res.DeclaredValue != "750 mL" {
			t.Fatalf("not_found must carry the declared value, got %+v", res)
		}
	}
}

func TestMatchFieldNotApplicable(t *testing.T) {
	res := MatchField(constants.FieldFancifulName, "", extractedValue("Surprise Name"))
	if res.Category != constants.MatchNotApplicable {
		t.Fatalf("expected not_applicable, got %+v", res)
	}
	if !res.Matched {
		t.Fatalf("nothing declared means nothing to contradict: %+v", res)
	}
	if res.DeclaredValue != "" {
		t.Fatalf("not_applicable carries no expected value: %+v", res)
	}

	res = MatchField(constants.FieldFancifulName, "", nil)
	if res.Category != constants.MatchNotApplicable || res.Matched {
		t.Fatalf("expected unmatched not_applicable with nothing extracted, got %+v", res)
	}
}

func TestMatchFieldHealthWarningExact(t *testing.T) {
	warning := "GOVERNMENT WARNING: (1) According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects."
	res := MatchField(constants.FieldHealthWarning, warning, extractedValue(warning))
	if !res.Matched || res.Category != constants.MatchExact {
		t.Fatalf("verbatim warning must match, got %+v", res)
	}
}

func TestMatchFieldHealthWarningCaseDifferenceIsHard(t *testing.T) {
	res := MatchField(constants.FieldHealthWarning, "GOVERNMENT WARNING: X", extractedValue("government warning: x"))
	if res.Matched || res.Category != constants.MatchHardMismatch {
		t.Fatalf("case-only difference on the warning is a hard mismatch, got %+v", res)
	}
}

func TestMatchFieldHealthWarningMissingPrefixIsHard(t *testing.T) {
	res := MatchField(constants.FieldHealthWarning, "GOVERNMENT WARNING: X", extractedValue("WARNING: X"))
	if res.Category != constants.MatchHardMismatch {
		t.Fatalf("missing prefix must be hard_mismatch, got %+v", res)
	}
}

func TestMatchFieldHealthWarningAbsentIsNotFound(t *testing.T) {
	res := MatchField(constants.FieldHealthWarning, "GOVERNMENT WARNING: X", nil)
	if res.Category != constants.MatchNotFound {
		t.Fatalf("absent extraction precedes the warning policy, got %+v", res)
	}
}

func TestIsSoftMismatch(t *testing.T) {
	cases := []struct {
		expected  string
		extracted string
		want      bool
	}{
		// normalized-equal pairs are resolved upstream, not reported here
		{"OLD TOM", "old tom", false},
		{"old tom", "old tom", false},
		// different content is hard, not soft
		{"Old Tom", "New Tom", false},
		// punctuation-only divergence
		{"750ml", "750-ml", true},
		// declared value inside a longer extracted phrase
		{"45%", "45% Alc./Vol.", true},
		// superset the wrong way around is not tolerated
		{"45% Alc./Vol.", "45%", false},
		{"", "anything", false},
		{"anything", "", false},
	}
	for _, c := range cases {
		if got := IsSoftMismatch(c.expected, c.extracted); got != c.want {
			t.Fatalf("IsSoftMismatch(%q, %q) = %v, want %v", c.expected, c.extracted, got, c.want)
		}
	}
}
