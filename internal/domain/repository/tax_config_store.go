package repository

import (
	"context"

	"pricing/internal/domain/entity"
)

// TaxConfigStore persists the tax configuration singleton locally.
type TaxConfigStore interface {
	// Load returns the current configuration.
	Load(ctx context.Context) (*entity.TaxConfiguration, error)

	// Save replaces the stored configuration.
	Save(ctx context.Context, cfg *entity.TaxConfiguration) error
}
