package port

import (
	"context"

	"github.com/credbureau/scoring-service/internal/domain/service"
	"github.com/credbureau/scoring-service/pkg/events"
)

// ModelClient is the port for the externally owned prediction capability.
// Implementations call a model-serving layer; the domain treats the model as
// opaque and never assumes a specific library or file format.
type ModelClient interface {
	// Predict sends the feature record to the model and returns the
	// probability of default.
	Predict(ctx context.Context, features service.FeatureRecord) (float64, error)

	// Health reports whether the model is loaded and reachable.
	Health(ctx context.Context) error
}

// EventPublisher is the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
