package valueobject

import "fmt"

// LendingDecision is an immutable value object representing the recommended
// action for a scored applicant.
type LendingDecision struct {
	value string
}

var (
	DecisionApprove = LendingDecision{value: "APPROVE"}
	DecisionReview  = LendingDecision{value: "REVIEW"}
	DecisionDecline = LendingDecision{value: "DECLINE"}
)

// LendingDecisionFromString reconstructs a decision from its string representation.
func LendingDecisionFromString(s string) (LendingDecision, error) {
	switch s {
	case "APPROVE":
		return DecisionApprove, nil
	case "REVIEW":
		return DecisionReview, nil
	case "DECLINE":
		return DecisionDecline, nil
	default:
		return LendingDecision{}, fmt.Errorf("invalid lending decision: %s", s)
	}
}

// DecisionFromScore determines the recommended decision from a credit score.
func DecisionFromScore(score int) LendingDecision {
	switch {
	case score >= 700:
		return DecisionApprove
	case score >= 580:
		return DecisionReview
	default:
		return DecisionDecline
	}
}

// String returns the string representation.
func (d LendingDecision) String() string {
	return d.value
}

// IsZero returns true if the decision has not been set.
func (d LendingDecision) IsZero() bool {
	return d.value == ""
}

// Equal checks equality with another LendingDecision.
func (d LendingDecision) Equal(other LendingDecision) bool {
	return d.value == other.value
}

// IsApproved returns true if the decision is APPROVE.
func (d LendingDecision) IsApproved() bool {
	return d.value == "APPROVE"
}

// IsDeclined returns true if the decision is DECLINE.
func (d LendingDecision) IsDeclined() bool {
	return d.value == "DECLINE"
}
