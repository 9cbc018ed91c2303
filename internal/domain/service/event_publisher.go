package service

import (
	"context"
	"time"
)

// PriceChangeEvent announces that a pricing operation committed one or more price changes.
type PriceChangeEvent struct {
	RequestID    string             `json:"request_id,omitempty"` // For distributed tracing
	EventID      string             `json:"event_id"`
	Operation    string             `json:"operation"` // apply_rules, bulk_adjust, psychological_pricing
	ActorID      string             `json:"actor_id"`
	UpdatedCount int                `json:"updated_count"`
	Changes      []PriceChangeEntry `json:"changes"`
	OccurredAt   time.Time          `json:"occurred_at"`
}

// PriceChangeEntry is one committed change inside a PriceChangeEvent.
type PriceChangeEntry struct {
	ProductID string  `json:"product_id"`
	RuleID    string  `json:"rule_id,omitempty"`
	OldPrice  float64 `json:"old_price"`
	NewPrice  float64 `json:"new_price"`
	Reason    string  `json:"reason"`
}

// Pricing operations carried in PriceChangeEvent.Operation.
const (
	OperationApplyRules           = "apply_rules"
	OperationBulkAdjust           = "bulk_adjust"
	OperationPsychologicalPricing = "psychological_pricing"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPriceChangeEvent publishes the outcome of a pricing operation
	PublishPriceChangeEvent(ctx context.Context, event *PriceChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
