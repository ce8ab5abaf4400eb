package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credbureau/scoring-service/internal/domain/valueobject"
)

func TestRiskGradeFromString(t *testing.T) {
	for _, s := range []string{"EXCELLENT", "GOOD", "FAIR", "POOR"} {
		grade, err := valueobject.RiskGradeFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, grade.String())
	}

	_, err := valueobject.RiskGradeFromString("MEDIOCRE")
	assert.Error(t, err)
}

func TestRiskGradeFromScore(t *testing.T) {
	assert.True(t, valueobject.RiskGradeFromScore(800).Equal(valueobject.RiskGradeExcellent))
	assert.True(t, valueobject.RiskGradeFromScore(700).Equal(valueobject.RiskGradeGood))
	assert.True(t, valueobject.RiskGradeFromScore(600).Equal(valueobject.RiskGradeFair))
	assert.True(t, valueobject.RiskGradeFromScore(400).Equal(valueobject.RiskGradePoor))
}

func TestRiskGradeIsZero(t *testing.T) {
	var zero valueobject.RiskGrade
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskGradeGood.IsZero())
}

func TestLendingDecisionFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected valueobject.LendingDecision
	}{
		{score: 900, expected: valueobject.DecisionApprove},
		{score: 700, expected: valueobject.DecisionApprove},
		{score: 699, expected: valueobject.DecisionReview},
		{score: 580, expected: valueobject.DecisionReview},
		{score: 579, expected: valueobject.DecisionDecline},
		{score: 300, expected: valueobject.DecisionDecline},
	}

	for _, tt := range tests {
		got := valueobject.DecisionFromScore(tt.score)
		assert.True(t, got.Equal(tt.expected), "score=%d expected=%s got=%s", tt.score, tt.expected, got)
	}
}

func TestLendingDecisionPredicates(t *testing.T) {
	assert.True(t, valueobject.DecisionApprove.IsApproved())
	assert.False(t, valueobject.DecisionApprove.IsDeclined())
	assert.True(t, valueobject.DecisionDecline.IsDeclined())

	decision, err := valueobject.LendingDecisionFromString("REVIEW")
	require.NoError(t, err)
	assert.Equal(t, "REVIEW", decision.String())

	_, err = valueobject.LendingDecisionFromString("MAYBE")
	assert.Error(t, err)
}
