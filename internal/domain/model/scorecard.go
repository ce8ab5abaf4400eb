package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/credbureau/scoring-service/internal/domain/event"
	"github.com/credbureau/scoring-service/internal/domain/valueobject"
	"github.com/credbureau/scoring-service/pkg/events"
)

// Scorecard is the aggregate for a single scoring request. It is created per
// request and discarded after the response is produced; nothing is persisted.
type Scorecard struct {
	events.EventCollector

	id          uuid.UUID
	applicantID string
	probability float64
	score       valueobject.CreditScore
	grade       valueobject.RiskGrade
	decision    valueobject.LendingDecision
	createdAt   time.Time
	scoredAt    time.Time
}

// NewScorecard creates an unscored scorecard. The applicant reference is
// optional; it is carried through events and responses for correlation only.
func NewScorecard(applicantID string) *Scorecard {
	return &Scorecard{
		id:          uuid.New(),
		applicantID: applicantID,
		createdAt:   time.Now().UTC(),
	}
}

// Apply records the model's probability and the mapped score, deriving the
// grade and decision and emitting a ScoreComputed event.
func (c *Scorecard) Apply(probability float64, score valueobject.CreditScore) error {
	if score.IsZero() {
		return fmt.Errorf("cannot apply zero score to scorecard %s", c.id)
	}

	c.probability = probability
	c.score = score
	c.grade = score.Grade()
	c.decision = valueobject.DecisionFromScore(score.Value())
	c.scoredAt = time.Now().UTC()

	c.Record(event.ScoreComputed{
		ScorecardID: c.id,
		ApplicantID: c.applicantID,
		Score:       c.score.Value(),
		Grade:       c.grade.String(),
		Decision:    c.decision.String(),
		ScoredAt:    c.scoredAt,
	})

	return nil
}

// RejectModelOutput records that the model produced an unmappable value and
// emits a ModelOutputInvalid alert event.
func (c *Scorecard) RejectModelOutput(reason string) {
	c.Record(event.ModelOutputInvalid{
		ScorecardID: c.id,
		ApplicantID: c.applicantID,
		Reason:      reason,
		DetectedAt:  time.Now().UTC(),
	})
}

// --- Accessors ---

func (c *Scorecard) ID() uuid.UUID                         { return c.id }
func (c *Scorecard) ApplicantID() string                   { return c.applicantID }
func (c *Scorecard) Probability() float64                  { return c.probability }
func (c *Scorecard) Score() valueobject.CreditScore        { return c.score }
func (c *Scorecard) Grade() valueobject.RiskGrade          { return c.grade }
func (c *Scorecard) Decision() valueobject.LendingDecision { return c.decision }
func (c *Scorecard) CreatedAt() time.Time                  { return c.createdAt }
func (c *Scorecard) ScoredAt() time.Time                   { return c.scoredAt }
