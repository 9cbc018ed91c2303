package usecase

import (
	"context"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase exposes the read side of the catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context, category entity.Category) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
