package service_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credbureau/scoring-service/internal/domain/service"
	"github.com/credbureau/scoring-service/pkg/testutil"
)

func newTestService(t *testing.T) *service.ScoringService {
	t.Helper()
	svc, err := service.NewScoringService(service.ScoringConfig{
		ExpectedFeatures: []string{"income", "debt_ratio"},
		ScoreMin:         300,
		ScoreMax:         900,
	})
	require.NoError(t, err)
	return svc
}

func fixedPredictor(p float64) service.PredictFunc {
	return func(_ context.Context, _ service.FeatureRecord) (float64, error) {
		return p, nil
	}
}

func validFeatures() service.FeatureRecord {
	return service.FeatureRecord{"income": 5000, "debt_ratio": 0.2}
}

func TestNewScoringService(t *testing.T) {
	t.Run("requires at least one expected feature", func(t *testing.T) {
		_, err := service.NewScoringService(service.ScoringConfig{
			ScoreMin: 300,
			ScoreMax: 900,
		})
		require.Error(t, err)
	})

	t.Run("rejects invalid score bounds", func(t *testing.T) {
		_, err := service.NewScoringService(service.ScoringConfig{
			ExpectedFeatures: []string{"income"},
			ScoreMin:         900,
			ScoreMax:         300,
		})
		require.Error(t, err)
	})

	t.Run("sorts expected feature names", func(t *testing.T) {
		svc, err := service.NewScoringService(service.ScoringConfig{
			ExpectedFeatures: []string{"income", "debt_ratio", "age"},
			ScoreMin:         300,
			ScoreMax:         900,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "debt_ratio", "income"}, svc.ExpectedFeatures())
	})

	t.Run("exposes a mapper carrying the configured bounds", func(t *testing.T) {
		svc, err := service.NewScoringService(service.ScoringConfig{
			ExpectedFeatures: []string{"income"},
			ScoreMin:         400,
			ScoreMax:         800,
		})
		require.NoError(t, err)

		m := svc.Mapper()
		assert.Equal(t, 400, m.Min())
		assert.Equal(t, 800, m.Max())

		score, err := m.MapToScore(0)
		require.NoError(t, err)
		assert.Equal(t, 800, score)
	})
}

func TestScoringServiceScore(t *testing.T) {
	t.Run("maps a low default probability to a high score", func(t *testing.T) {
		svc := newTestService(t)

		score, err := svc.Score(context.Background(), validFeatures(), fixedPredictor(0.1))

		require.NoError(t, err)
		assert.Equal(t, 840, score.Value())
	})

	t.Run("maps a high default probability to a low score", func(t *testing.T) {
		svc := newTestService(t)

		score, err := svc.Score(context.Background(), validFeatures(), fixedPredictor(0.95))

		require.NoError(t, err)
		assert.Equal(t, 330, score.Value())
	})

	t.Run("clamps an out-of-domain prediction to the boundary score", func(t *testing.T) {
		svc := newTestService(t)

		score, err := svc.Score(context.Background(), validFeatures(), fixedPredictor(1.3))

		require.NoError(t, err)
		assert.Equal(t, 300, score.Value())
	})

	t.Run("translates predictor failure to ModelUnavailable", func(t *testing.T) {
		svc := newTestService(t)
		predict := func(_ context.Context, _ service.FeatureRecord) (float64, error) {
			return 0, fmt.Errorf("inference backend timed out")
		}

		_, err := svc.Score(context.Background(), validFeatures(), predict)

		kind, ok := service.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, service.ErrorKindModelUnavailable, kind)
		testutil.AssertErrorContains(t, err, "inference backend timed out")
	})

	t.Run("returns ModelUnavailable for a nil predictor", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Score(context.Background(), validFeatures(), nil)

		kind, ok := service.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, service.ErrorKindModelUnavailable, kind)
	})

	t.Run("propagates InvalidModelOutput from the mapper unchanged", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Score(context.Background(), validFeatures(), fixedPredictor(math.NaN()))

		kind, ok := service.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, service.ErrorKindInvalidModelOutput, kind)
	})

	t.Run("does not invoke the predictor on validation failure", func(t *testing.T) {
		svc := newTestService(t)
		invoked := false
		predict := func(_ context.Context, _ service.FeatureRecord) (float64, error) {
			invoked = true
			return 0.1, nil
		}

		_, err := svc.Score(context.Background(), service.FeatureRecord{"income": 5000}, predict)

		require.Error(t, err)
		assert.False(t, invoked)
	})
}

func TestScoringServiceValidate(t *testing.T) {
	svc := newTestService(t)

	t.Run("accepts an exact feature set", func(t *testing.T) {
		assert.NoError(t, svc.Validate(validFeatures()))
	})

	t.Run("rejects a missing feature", func(t *testing.T) {
		err := svc.Validate(service.FeatureRecord{"income": 5000})

		kind, ok := service.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, service.ErrorKindInvalidInput, kind)
		testutil.AssertErrorContains(t, err, `missing feature "debt_ratio"`)
	})

	t.Run("rejects an unexpected feature", func(t *testing.T) {
		features := validFeatures()
		features["shoe_size"] = 42
		err := svc.Validate(features)

		kind, ok := service.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, service.ErrorKindInvalidInput, kind)
		testutil.AssertErrorContains(t, err, `unexpected feature "shoe_size"`)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			features := validFeatures()
			features["income"] = bad
			err := svc.Validate(features)

			kind, ok := service.KindOf(err)
			require.True(t, ok, "value=%v", bad)
			assert.Equal(t, service.ErrorKindInvalidInput, kind)
			assert.Contains(t, err.Error(), `"income"`)
		}
	})

	t.Run("reports the first failing field in sorted order", func(t *testing.T) {
		// Both features missing: debt_ratio sorts before income.
		err := svc.Validate(service.FeatureRecord{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing feature "debt_ratio"`)

		// Two extras: the alphabetically first is reported.
		features := validFeatures()
		features["zeta"] = 1
		features["alpha"] = 1
		err = svc.Validate(features)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unexpected feature "alpha"`)
	})
}
