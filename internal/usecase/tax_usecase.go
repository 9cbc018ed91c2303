package usecase

import (
	"context"

	"pricing/internal/domain/entity"
	"pricing/internal/domain/pricing"
)

// TaxUsecase manages the tax configuration and computes customer-facing prices from it.
type TaxUsecase interface {
	// GetConfiguration returns the current tax configuration.
	GetConfiguration(ctx context.Context) (*entity.TaxConfiguration, error)

	// SaveConfiguration validates and replaces the tax configuration.
	SaveConfiguration(ctx context.Context, cfg *entity.TaxConfiguration) error

	// Overlay derives the VAT-inclusive and senior/PWD prices for a final price.
	Overlay(ctx context.Context, finalPrice float64) (*pricing.OverlayResult, error)
}
