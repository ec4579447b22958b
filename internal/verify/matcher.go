package verify

import (
	"strings"

	"labelproof/constants"
	"labelproof/internal/vision"
)

// GovernmentWarningPrefix is the token the mandatory health statement must
// open with, verbatim, on every label (27 CFR 16.21).
const GovernmentWarningPrefix = "GOVERNMENT WARNING:"

// FieldResult is the outcome of comparing one declared field against the
// value extracted from a label image.
type FieldResult struct {
	Matched        bool                    `json:"matched"`
	Category       constants.MatchCategory `json:"category"`
	DeclaredValue  string                  `json:"declared_value,omitempty"`
	ExtractedValue string                  `json:"extracted_value,omitempty"`
}

// MatchField decides the comparison category for a single field. First
// applicable rule wins; the function is total and never fails. Absent or
// malformed inputs degrade to not_found / not_applicable.
func MatchField(fieldName, declared string, extracted *vision.Field) FieldResult {
	// Nothing declared: nothing to contradict.
	if declared == "" {
		res := FieldResult{Matched: extracted != nil, Category: constants.MatchNotApplicable}
		if extracted != nil {
			res.ExtractedValue = extracted.Value
		}
		return res
	}

	// Declared but never read off the label.
	if extracted == nil || extracted.Value == "" {
		return FieldResult{
			Matched:       false,
			Category:      constants.MatchNotFound,
			DeclaredValue: declared,
		}
	}

	// Regulatory text reproduces verbatim or not at all; the lenient
	// formatting tolerance below does not apply.
	if fieldName == constants.FieldHealthWarning {
		return matchHealthWarning(declared, extracted.Value)
	}

	res := FieldResult{
		DeclaredValue:  declared,
		ExtractedValue: extracted.Value,
	}

	switch {
	case declared == extracted.Value:
		res.Matched = true
		res.Category = constants.MatchExact
	case Normalize(declared) == Normalize(extracted.Value):
		res.Category = constants.MatchSoftMismatch
	case IsSoftMismatch(declared, extracted.Value):
		res.Category = constants.MatchSoftMismatch
	default:
		res.Category = constants.MatchHardMismatch
	}
	return res
}

// matchHealthWarning applies the exact-text policy: the extracted statement
// must start with the literal uppercase prefix and reproduce the declared
// text byte-for-byte. A missing colon, a paraphrase, or even a case-only
// difference is a compliance violation, not formatting noise.
func matchHealthWarning(declared, extracted string) FieldResult {
	res := FieldResult{
		DeclaredValue:  declared,
		ExtractedValue: extracted,
	}
	if strings.HasPrefix(strings.ToUpper(extracted), GovernmentWarningPrefix) && extracted == declared {
		res.Matched = true
		res.Category = constants.MatchExact
		return res
	}
	res.Category = constants.MatchHardMismatch
	return res
}

// IsSoftMismatch reports whether two values differ only in formatting:
// punctuation styling, or the declared value appearing inside a longer
// extracted phrase ("45%" within "45% Alc./Vol."). Pairs whose normalized
// forms already agree are classified upstream by MatchField and report false
// here; the predicate is only true for genuinely different-but-equivalent
// strings.
func IsSoftMismatch(expected, extracted string) bool {
	ne := Normalize(expected)
	na := Normalize(extracted)
	if ne == na {
		return false
	}

	ce := StripPunctuation(ne)
	ca := StripPunctuation(na)
	if ce == "" || ca == "" {
		return false
	}
	if ce == ca {
		return true
	}
	return strings.Contains(ca, ce)
}
