package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceChangeLogEntry records one committed price change. Entries are never mutated.
type PriceChangeLogEntry struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	RuleID    *uuid.UUID `json:"rule_id,omitempty"` // Nil for bulk and manual changes.
	OldPrice  float64    `json:"old_price"`
	NewPrice  float64    `json:"new_price"`
	Reason    string     `json:"reason"`
	ActorID   uuid.UUID  `json:"actor_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// BatchResult summarizes a catalog-wide pricing operation.
// UpdatedCount may be smaller than the candidate set when the operation stopped on an error.
type BatchResult struct {
	UpdatedCount int                    `json:"updated_count"`
	Logs         []*PriceChangeLogEntry `json:"logs"`
}
