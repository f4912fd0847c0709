package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
)

// Watermill topics for coffee lifecycle events. The projection worker
// subscribes to all three to keep the Redis read store in step with the
// primary store.
const (
	TopicCoffeeCreated = "coffee.created"
	TopicCoffeeUpdated = "coffee.updated"
	TopicCoffeeDeleted = "coffee.deleted"
)

// CoffeeChangedEvent is published after a coffee is created or updated in the
// primary store. It carries the full snapshot so consumers can project the
// record without a read-back.
type CoffeeChangedEvent struct {
	EventID    uuid.UUID             `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int                   `json:"version"`  // Schema version; increment on breaking changes
	Coffee     models.CoffeeSnapshot `json:"coffee"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// CoffeeDeletedEvent is published after a coffee is removed from the primary
// store.
type CoffeeDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CoffeeID   uuid.UUID `json:"coffee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
