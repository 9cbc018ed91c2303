// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductFilter narrows a product listing. An empty or "all" Category selects every product.
type ProductFilter struct {
	Category entity.Category
}

// PriceUpdate describes a single selling price write.
type PriceUpdate struct {
	ProductID    uuid.UUID
	SellingPrice float64
	// ExpectedPrice, when set, makes the write conditional on the stored price still being
	// this value. A mismatch is reported as a conflict.
	ExpectedPrice *float64
	// AppliedRuleID records the rule that produced SellingPrice. Nil leaves the stored value alone.
	AppliedRuleID *uuid.UUID
}

// ProductRepository defines the catalog operations the pricing engine needs.
type ProductRepository interface {
	// ListProducts returns the products matching filter in a stable order.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdatePrice writes a new selling price for one product.
	UpdatePrice(ctx context.Context, update PriceUpdate) error
}
