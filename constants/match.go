package constants

// MatchCategory classifies how a declared field compares to the value the
// vision extractor read off the label.
type MatchCategory string

const (
	// MatchExact covers byte-for-byte agreement.
	MatchExact MatchCategory = "match"
	// MatchSoftMismatch covers formatting-only drift (case, whitespace,
	// punctuation, or the declared value embedded in a longer phrase).
	MatchSoftMismatch MatchCategory = "soft_mismatch"
	// MatchHardMismatch covers substantive disagreement.
	MatchHardMismatch MatchCategory = "hard_mismatch"
	// MatchNotFound means the field was declared but never extracted.
	MatchNotFound MatchCategory = "not_found"
	// MatchNotApplicable means the applicant declared nothing to check.
	MatchNotApplicable MatchCategory = "not_applicable"
)
