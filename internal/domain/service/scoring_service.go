package service

import (
	"context"
	"math"
	"sort"

	"github.com/credbureau/scoring-service/internal/domain/valueobject"
)

// FeatureRecord maps feature names to numeric values for a single applicant.
// A valid record contains exactly the feature set the model was trained on.
type FeatureRecord map[string]float64

// PredictFunc is the externally owned model inference capability. It returns
// the probability of default for the given features, or an error when the
// model cannot produce a prediction.
type PredictFunc func(ctx context.Context, features FeatureRecord) (float64, error)

// ScoringConfig is the immutable configuration passed to the scoring service
// at construction. Feature names and score bounds come from the hosting
// environment, never from process-wide state.
type ScoringConfig struct {
	ExpectedFeatures []string
	ScoreMin         int
	ScoreMax         int
}

// ScoringService validates a feature record, invokes the injected predictor,
// and maps the prediction onto a credit score. Each call is a single-shot,
// stateless transaction; the service holds no cross-request state and is safe
// for concurrent use.
type ScoringService struct {
	expected    []string
	expectedSet map[string]struct{}
	mapper      *ScoreMapper
}

// NewScoringService creates a ScoringService from the given configuration.
// Expected feature names are sorted once so that validation failures are
// reported in a deterministic field order.
func NewScoringService(cfg ScoringConfig) (*ScoringService, error) {
	if len(cfg.ExpectedFeatures) == 0 {
		return nil, NewInvalidInput("at least one expected feature is required")
	}

	mapper, err := NewScoreMapper(cfg.ScoreMin, cfg.ScoreMax)
	if err != nil {
		return nil, err
	}

	expected := make([]string, len(cfg.ExpectedFeatures))
	copy(expected, cfg.ExpectedFeatures)
	sort.Strings(expected)

	expectedSet := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		expectedSet[name] = struct{}{}
	}

	return &ScoringService{
		expected:    expected,
		expectedSet: expectedSet,
		mapper:      mapper,
	}, nil
}

// Mapper returns the score mapper used by this service.
func (s *ScoringService) Mapper() *ScoreMapper { return s.mapper }

// ExpectedFeatures returns the sorted expected feature names.
func (s *ScoringService) ExpectedFeatures() []string {
	out := make([]string, len(s.expected))
	copy(out, s.expected)
	return out
}

// Score runs the scoring pipeline: validate, predict, map. It returns either
// a CreditScore or a ScoringError, never both, never neither. The predictor
// is not invoked when validation fails.
func (s *ScoringService) Score(ctx context.Context, features FeatureRecord, predict PredictFunc) (valueobject.CreditScore, error) {
	if err := s.Validate(features); err != nil {
		return valueobject.CreditScore{}, err
	}

	if predict == nil {
		return valueobject.CreditScore{}, NewModelUnavailable("no prediction capability configured")
	}

	raw, err := predict(ctx, features)
	if err != nil {
		// Translate to the service's own taxonomy; the model's internal
		// error type must not leak to the caller.
		return valueobject.CreditScore{}, NewModelUnavailable("prediction failed: %v", err)
	}

	mapped, err := s.mapper.MapToScore(raw)
	if err != nil {
		return valueobject.CreditScore{}, err
	}

	return valueobject.NewCreditScore(mapped)
}

// Validate checks that features contains exactly the expected feature names
// with finite values. The first failing field is reported in sorted-name
// order: missing or non-finite expected features first, then unexpected
// extras.
func (s *ScoringService) Validate(features FeatureRecord) error {
	for _, name := range s.expected {
		value, ok := features[name]
		if !ok {
			return NewInvalidInput("missing feature %q", name)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return NewInvalidInput("feature %q has non-finite value %v", name, value)
		}
	}

	if len(features) == len(s.expected) {
		return nil
	}

	extras := make([]string, 0, len(features)-len(s.expected))
	for name := range features {
		if _, ok := s.expectedSet[name]; !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return NewInvalidInput("unexpected feature %q", extras[0])
}
