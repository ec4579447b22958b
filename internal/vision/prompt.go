package vision

import (
	"strings"

	"labelproof/constants"
)

// BuildSystemPrompt composes the system message: what the model is looking
// at, which fields to read, and strict-but-practical formatting rules.
func BuildSystemPrompt(beverageType string) string {
	parts := []string{
		"You are an alcohol-beverage label reader. Return ONLY JSON that matches the provided JSON Schema.",
		"Each field you can read must be an object with 'value' (the text exactly as printed on the label) and an optional 'confidence' between 0 and 1.",
		"Transcribe values verbatim: keep the label's capitalization, punctuation, and spacing. Never paraphrase.",
		"The health warning statement must be transcribed in full, character for character, including the leading GOVERNMENT WARNING: token.",
		"If a field is not printed on this image, omit it entirely. Never output null and never guess.",
		"Fields to read: " + strings.Join(constants.LabelFields, ", ") + ".",
	}

	if bt, ok := constants.CanonicalizeBeverage(beverageType); ok {
		parts = append(parts, "The label belongs to a "+string(bt)+" product.")
		if bt != constants.Wine {
			parts = append(parts, "Wine-only fields (grape_varietal, appellation, vintage) will usually be absent; omit them unless clearly printed.")
		}
	}

	return strings.Join(parts, " ")
}

// BuildUserPrompt is intentionally short: the image carries the content.
func BuildUserPrompt(role string) string {
	var b strings.Builder
	b.WriteString("Read the structured fields off this label image.")
	if r := strings.TrimSpace(role); r != "" {
		b.WriteString(" This is the ")
		b.WriteString(r)
		b.WriteString(" label of the container.")
	}
	return b.String()
}
