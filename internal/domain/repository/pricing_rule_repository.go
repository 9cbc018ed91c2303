package repository

import (
	"context"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// RuleFilter narrows a rule listing. A nil IsActive returns every rule.
type RuleFilter struct {
	IsActive *bool
}

// PricingRuleRepository defines the interface for pricing rule storage.
// Rules are returned in the store's natural order (creation time), which the price
// calculator relies on.
type PricingRuleRepository interface {
	// ListRules returns the rules matching filter.
	ListRules(ctx context.Context, filter RuleFilter) ([]*entity.PricingRule, error)

	// CreateRule persists a new rule and fills in generated fields.
	CreateRule(ctx context.Context, rule *entity.PricingRule) error

	// SetActive toggles a rule on or off.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
