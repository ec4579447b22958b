package constants

// ApplicationStatus is the canonical workflow status for rows in applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending     ApplicationStatus = "pending"      // awaiting review
	StatusNeedsReview ApplicationStatus = "needs_review" // verification flagged formatting drift
	StatusApproved    ApplicationStatus = "approved"     // terminal, set by a human reviewer
	StatusRejected    ApplicationStatus = "rejected"     // terminal, set by a human reviewer
)

// ApplicationStatuses lists every status the applications table accepts.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusNeedsReview,
	StatusApproved,
	StatusRejected,
}

// StatusStrings returns the statuses as plain strings for ent enum fields.
func StatusStrings() []string {
	out := make([]string, len(ApplicationStatuses))
	for i, s := range ApplicationStatuses {
		out[i] = string(s)
	}
	return out
}

// BatchStatus describes one batch verification run.
// A batch never fails as a whole; partial failure is recorded per item.
type BatchStatus string

const (
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
)

// ItemOutcome is the terminal state of one application inside a batch.
type ItemOutcome string

const (
	ItemSuccess ItemOutcome = "success"
	ItemFailed  ItemOutcome = "failed"
)
