package verify

import (
	"testing"

	"labelproof/constants"
)

func fieldResult(cat constants.MatchCategory) FieldResult {
	return FieldResult{Matched: cat == constants.MatchExact, Category: cat}
}

func TestResolveStatusHardMismatchStaysPending(t *testing.T) {
	result := Result{
		"brand_name":      fieldResult(constants.MatchExact),
		"alcohol_content": fieldResult(constants.MatchHardMismatch),
		"net_contents":    fieldResult(constants.MatchSoftMismatch),
	}
	if got := ResolveStatus(result); got != constants.StatusPending {
		t.Fatalf("hard_mismatch must resolve to pending, got %s", got)
	}
}

func TestResolveStatusNotFoundStaysPending(t *testing.T) {
	result := Result{
		"brand_name":     fieldResult(constants.MatchExact),
		"health_warning": fieldResult(constants.MatchNotFound),
	}
	if got := ResolveStatus(result); got != constants.StatusPending {
		t.Fatalf("not_found must resolve to pending, got %s", got)
	}
}

func TestResolveStatusSoftMismatchNeedsReview(t *testing.T) {
	result := Result{
		"brand_name":      fieldResult(constants.MatchExact),
		"alcohol_content": fieldResult(constants.MatchSoftMismatch),
	}
	if got := ResolveStatus(result); got != constants.StatusNeedsReview {
		t.Fatalf("soft_mismatch alone must resolve to needs_review, got %s", got)
	}
}

func TestResolveStatusAllMatchedStaysPending(t *testing.T) {
	// Fully matched applications still require a human approval step.
	result := Result{
		"brand_name":    fieldResult(constants.MatchExact),
		"producer_name": fieldResult(constants.MatchExact),
		"vintage":       fieldResult(constants.MatchNotApplicable),
	}
	if got := ResolveStatus(result); got != constants.StatusPending {
		t.Fatalf("all-match must resolve to pending, got %s", got)
	}
}

func TestResolveStatusEmptyResultStaysPending(t *testing.T) {
	if got := ResolveStatus(Result{}); got != constants.StatusPending {
		t.Fatalf("empty result must resolve to pending, got %s", got)
	}
}
