package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credbureau/scoring-service/internal/domain/valueobject"
)

// AssertErrorContains checks that err is non-nil and mentions the expected
// substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertScoreInRange fails unless score sits inside the bureau range enforced
// by valueobject.CreditScore.
func AssertScoreInRange(t *testing.T, score int) {
	t.Helper()
	assert.GreaterOrEqual(t, score, valueobject.ScoreFloor)
	assert.LessOrEqual(t, score, valueobject.ScoreCeiling)
}
