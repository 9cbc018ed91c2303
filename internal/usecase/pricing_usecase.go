// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pricing/internal/domain/entity"
	"pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ApplyRulesInput selects the products the active rules are applied to.
// An empty Category (or "all") covers the whole catalog.
type ApplyRulesInput struct {
	Category entity.Category
	ActorID  uuid.UUID
}

// BulkAdjustInput defines a percentage change applied to every product in a category.
type BulkAdjustInput struct {
	Category  entity.Category
	Percent   float64
	Direction entity.AdjustDirection
	ActorID   uuid.UUID
}

// SimulateInput is a hand-entered price preview request.
type SimulateInput struct {
	BasePrice    float64
	Category     entity.Category
	DaysToExpiry *int
}

// PricingUsecase defines the catalog repricing operations.
type PricingUsecase interface {
	// Simulate previews a price without touching the catalog.
	Simulate(ctx context.Context, input SimulateInput) (*pricing.SimulationResult, error)

	// ApplyRules commits the highest-priority matching rule to each product.
	// On a mid-batch failure the partial result is returned together with the error.
	ApplyRules(ctx context.Context, input ApplyRulesInput) (*entity.BatchResult, error)

	// BulkAdjust raises or lowers every selected price by a percentage.
	BulkAdjust(ctx context.Context, input BulkAdjustInput) (*entity.BatchResult, error)

	// ApplyPsychologicalPricing rounds every price to the next .99 ending.
	ApplyPsychologicalPricing(ctx context.Context, actorID uuid.UUID) (*entity.BatchResult, error)
}
