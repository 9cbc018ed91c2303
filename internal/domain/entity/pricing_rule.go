package entity

import (
	"time"

	"github.com/google/uuid"
)

// PricingRule is a declarative price adjustment applied to matching products.
type PricingRule struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	RuleType          RuleType  `json:"rule_type"`
	IsActive          bool      `json:"is_active"`
	Priority          int       `json:"priority"`                 // Higher values are evaluated first by Apply.
	ConditionDays     *int      `json:"condition_days,omitempty"` // Meaning depends on RuleType.
	AdjustmentPercent float64   `json:"adjustment_percent"`       // Negative is a discount, positive a markup.
	AppliesToCategory Category  `json:"applies_to_category,omitempty"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AppliesTo reports whether the rule's category filter admits the given category.
func (r *PricingRule) AppliesTo(category Category) bool {
	return r.AppliesToCategory.IsAll() || r.AppliesToCategory == category
}
