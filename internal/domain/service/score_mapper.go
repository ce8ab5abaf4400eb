package service

import (
	"fmt"
	"math"

	"github.com/credbureau/scoring-service/internal/domain/valueobject"
)

// ScoreMapper converts a model's raw output into a bureau-style credit score.
//
// The mapping contract is fixed: raw is the probability of default in [0,1],
// and score = max - round(raw * (max - min)). A higher probability of default
// yields a lower score. With the default 300/900 bounds this is the
// conventional scorecard formula 300 + 600*(1 - p).
type ScoreMapper struct {
	min int
	max int
}

// NewScoreMapper creates a ScoreMapper with the given bounds. Bounds must be
// ordered and must sit inside the conventional bureau range enforced by
// valueobject.CreditScore.
func NewScoreMapper(min, max int) (*ScoreMapper, error) {
	if min >= max {
		return nil, fmt.Errorf("score bounds must be ordered, got [%d, %d]", min, max)
	}
	if min < valueobject.ScoreFloor || max > valueobject.ScoreCeiling {
		return nil, fmt.Errorf("score bounds [%d, %d] outside bureau range [%d, %d]",
			min, max, valueobject.ScoreFloor, valueobject.ScoreCeiling)
	}
	return &ScoreMapper{min: min, max: max}, nil
}

// DefaultScoreMapper returns a mapper with the conventional 300-900 bounds.
func DefaultScoreMapper() *ScoreMapper {
	return &ScoreMapper{min: valueobject.ScoreFloor, max: valueobject.ScoreCeiling}
}

// Min returns the lower score bound.
func (m *ScoreMapper) Min() int { return m.min }

// Max returns the upper score bound.
func (m *ScoreMapper) Max() int { return m.max }

// MapToScore maps a probability of default onto the score range.
//
// Finite input outside [0,1] (floating-point drift, a miscalibrated model) is
// clamped to a boundary score rather than rejected: a saturated score is more
// useful to downstream consumers than no score at all. Non-finite input is
// rejected with an InvalidModelOutput error, because silently saturating a
// NaN would be indistinguishable from a legitimately extreme applicant.
//
// The function is pure: identical input always yields the identical score.
func (m *ScoreMapper) MapToScore(raw float64) (int, error) {
	if math.IsNaN(raw) {
		return 0, NewInvalidModelOutput("model returned NaN")
	}
	if math.IsInf(raw, 0) {
		return 0, NewInvalidModelOutput("model returned infinite value %v", raw)
	}

	// Clamp before the arithmetic: converting an out-of-range float to int is
	// implementation-defined, so boundedness must not depend on it.
	if raw < 0 {
		return m.max, nil
	}
	if raw > 1 {
		return m.min, nil
	}

	span := float64(m.max - m.min)
	score := m.max - int(math.Round(raw*span))

	if score < m.min {
		return m.min, nil
	}
	if score > m.max {
		return m.max, nil
	}
	return score, nil
}
