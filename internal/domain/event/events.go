package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeScoreComputed is emitted when a scorecard has been computed.
	EventTypeScoreComputed = "credit.scorecard.computed"

	// EventTypeModelOutputInvalid is emitted when the model returns an
	// unmappable value. It signals an upstream model or integration bug and
	// is intended to alert, not to be silently absorbed.
	EventTypeModelOutputInvalid = "credit.model.output_invalid"

	// EventTypeApplicantIneligible is emitted when the rule-based pre-screen
	// rejects an applicant.
	EventTypeApplicantIneligible = "credit.applicant.ineligible"
)

// ScoreComputed is published when a credit score has been computed for an
// applicant.
type ScoreComputed struct {
	ScorecardID uuid.UUID `json:"scorecard_id"`
	ApplicantID string    `json:"applicant_id,omitempty"`
	Score       int       `json:"score"`
	Grade       string    `json:"grade"`
	Decision    string    `json:"decision"`
	ScoredAt    time.Time `json:"scored_at"`
}

// EventType returns the event type identifier.
func (e ScoreComputed) EventType() string {
	return EventTypeScoreComputed
}

// AggregateID returns the scorecard ID as the aggregate identifier.
func (e ScoreComputed) AggregateID() uuid.UUID {
	return e.ScorecardID
}

// OccurredAt returns when the score was computed.
func (e ScoreComputed) OccurredAt() time.Time {
	return e.ScoredAt
}

// ModelOutputInvalid is published when the external model produced a value
// the score mapper rejected.
type ModelOutputInvalid struct {
	ScorecardID uuid.UUID `json:"scorecard_id"`
	ApplicantID string    `json:"applicant_id,omitempty"`
	Reason      string    `json:"reason"`
	DetectedAt  time.Time `json:"detected_at"`
}

// EventType returns the event type identifier.
func (e ModelOutputInvalid) EventType() string {
	return EventTypeModelOutputInvalid
}

// AggregateID returns the scorecard ID as the aggregate identifier.
func (e ModelOutputInvalid) AggregateID() uuid.UUID {
	return e.ScorecardID
}

// OccurredAt returns when the invalid output was detected.
func (e ModelOutputInvalid) OccurredAt() time.Time {
	return e.DetectedAt
}

// ApplicantIneligible is published when the pre-screen rules reject an
// applicant before model scoring.
type ApplicantIneligible struct {
	CheckID     uuid.UUID `json:"check_id"`
	ApplicantID string    `json:"applicant_id,omitempty"`
	Reasons     []string  `json:"reasons"`
	CheckedAt   time.Time `json:"checked_at"`
}

// EventType returns the event type identifier.
func (e ApplicantIneligible) EventType() string {
	return EventTypeApplicantIneligible
}

// AggregateID returns the check ID as the aggregate identifier.
func (e ApplicantIneligible) AggregateID() uuid.UUID {
	return e.CheckID
}

// OccurredAt returns when the check ran.
func (e ApplicantIneligible) OccurredAt() time.Time {
	return e.CheckedAt
}
