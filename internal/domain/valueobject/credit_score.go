package valueobject

import "fmt"

const (
	// ScoreFloor is the lowest valid bureau-style credit score.
	ScoreFloor = 300

	// ScoreCeiling is the highest valid bureau-style credit score.
	ScoreCeiling = 900
)

// CreditScore is an immutable value object holding a bureau-style credit
// score. A constructed CreditScore is always within [ScoreFloor, ScoreCeiling].
type CreditScore struct {
	value int
}

// NewCreditScore creates a CreditScore, rejecting out-of-range values.
func NewCreditScore(value int) (CreditScore, error) {
	if value < ScoreFloor || value > ScoreCeiling {
		return CreditScore{}, fmt.Errorf("credit score %d outside range [%d, %d]", value, ScoreFloor, ScoreCeiling)
	}
	return CreditScore{value: value}, nil
}

// Value returns the numeric score.
func (s CreditScore) Value() int {
	return s.value
}

// String returns the decimal representation of the score.
func (s CreditScore) String() string {
	return fmt.Sprintf("%d", s.value)
}

// Grade derives the risk grade for this score.
func (s CreditScore) Grade() RiskGrade {
	return RiskGradeFromScore(s.value)
}

// IsZero returns true if the score has not been set.
func (s CreditScore) IsZero() bool {
	return s.value == 0
}

// Equal checks equality with another CreditScore.
func (s CreditScore) Equal(other CreditScore) bool {
	return s.value == other.value
}
