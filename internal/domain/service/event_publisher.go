package service

import (
	"context"
	"time"
)

// QuoteEvent describes a committed quote status change.
type QuoteEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	QuoteID    string    `json:"quote_id"`
	CustomerID string    `json:"customer_id"`
	PolicyType string    `json:"policy_type"`
	FromStatus string    `json:"from_status,omitempty"` // Empty when the quote was just created
	ToStatus   string    `json:"to_status"`
	Premium    string    `json:"premium"`
	Cover      string    `json:"cover"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuoteEvent publishes a quote status change for downstream consumers
	PublishQuoteEvent(ctx context.Context, event *QuoteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
