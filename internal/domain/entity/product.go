package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the pricing-relevant view of a catalog item.
type Product struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	SKU            string     `json:"sku,omitempty"`
	Category       Category   `json:"category"`
	SellingPrice   float64    `json:"selling_price"`
	CostPrice      float64    `json:"cost_price"` // Margin display only.
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	// LastAppliedRuleID is the rule whose adjustment produced the current selling price, if any.
	LastAppliedRuleID *uuid.UUID `json:"last_applied_rule_id,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
