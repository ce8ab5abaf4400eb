package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestScorecardID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestApplicantID = "APP-2024-0001"
)

// ValidFeatures returns a feature record matching DefaultFeatureNames.
func ValidFeatures() map[string]float64 {
	return map[string]float64{
		"income":     5000,
		"debt_ratio": 0.2,
	}
}

// DefaultFeatureNames is the expected feature set used across tests.
func DefaultFeatureNames() []string {
	return []string{"income", "debt_ratio"}
}
