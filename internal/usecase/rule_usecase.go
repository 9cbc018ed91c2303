package usecase

import (
	"context"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRuleInput defines the data required to create a pricing rule.
type CreateRuleInput struct {
	Name              string
	RuleType          entity.RuleType
	IsActive          bool
	Priority          int
	ConditionDays     *int
	AdjustmentPercent float64
	AppliesToCategory entity.Category
	Description       string
}

// RuleUsecase defines the interface for pricing rule management.
type RuleUsecase interface {
	CreateRule(ctx context.Context, input CreateRuleInput) (*entity.PricingRule, error)
	// ListRules returns rules in creation order; a nil activeOnly returns all of them.
	ListRules(ctx context.Context, activeOnly *bool) ([]*entity.PricingRule, error)
	SetRuleActive(ctx context.Context, id uuid.UUID, active bool) error
}
