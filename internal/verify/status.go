package verify

import (
	"labelproof/constants"
)

// ResolveStatus derives the advisory disposition for a verification result.
//
// Any hard mismatch or missing field means a human has to judge the
// application, so it stays pending. Formatting-only drift is triaged as
// needs_review. A fully matched application is still pending: this system
// never auto-approves or auto-rejects; approved/rejected are set exclusively
// by a reviewer.
func ResolveStatus(result Result) constants.ApplicationStatus {
	softMismatch := false
	for _, fr := range result {
		switch fr.Category {
		case constants.MatchHardMismatch, constants.MatchNotFound:
			return constants.StatusPending
		case constants.MatchSoftMismatch:
			softMismatch = true
		}
	}
	if softMismatch {
		return constants.StatusNeedsReview
	}
	return constants.StatusPending
}
