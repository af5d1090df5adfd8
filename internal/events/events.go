package events

import (
	"context"
	"time"
)

// Event types published on the product lifecycle topic.
const (
	TypeProductCreated = "product.created"
	TypeProductDeleted = "product.deleted"
)

// Event is the payload published after a product is created or deleted.
type Event struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits product lifecycle events. Publishing is best-effort:
// handlers log failures and never let them change the HTTP outcome.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
