package verify

import (
	"regexp"
	"strings"
)

var (
	reWhitespace  = regexp.MustCompile(`\s+`)
	rePunctuation = regexp.MustCompile(`[^\w\s]`)
)

// Normalize canonicalizes a string for comparison: lowercase, trimmed, with
// every run of whitespace collapsed to a single space. Idempotent.
func Normalize(s string) string {
	return reWhitespace.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), " ")
}

// StripPunctuation removes everything that is not a word character or
// whitespace, then trims. Used only inside soft-mismatch detection; exact and
// normalized comparisons never see punctuation-stripped values.
func StripPunctuation(s string) string {
	return strings.TrimSpace(rePunctuation.ReplaceAllString(s, ""))
}
