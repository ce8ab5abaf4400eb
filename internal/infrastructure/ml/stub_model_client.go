package ml

import (
	"context"
	"log/slog"

	"github.com/credbureau/scoring-service/internal/domain/service"
)

// StubModelClient implements port.ModelClient as a stand-in for development
// and local runs without a model server.
type StubModelClient struct {
	probability float64
	logger      *slog.Logger
}

// NewStubModelClient creates a stub that always predicts the given
// probability of default.
func NewStubModelClient(probability float64, logger *slog.Logger) *StubModelClient {
	return &StubModelClient{probability: probability, logger: logger}
}

// Predict returns the configured probability regardless of the features.
func (c *StubModelClient) Predict(_ context.Context, features service.FeatureRecord) (float64, error) {
	c.logger.Debug("stub model prediction requested",
		slog.Int("feature_count", len(features)),
	)
	return c.probability, nil
}

// Health always reports healthy.
func (c *StubModelClient) Health(_ context.Context) error {
	return nil
}
