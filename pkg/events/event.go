// Package events defines the domain event contract shared by aggregates and
// the messaging infrastructure.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement. Events are
// immutable facts; their JSON encoding is the payload published to the
// message broker.
type DomainEvent interface {
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}
