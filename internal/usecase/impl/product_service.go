package impl

import (
	"context"
	"fmt"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/usecase"

	"github.com/google/uuid"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
	}
}

// ListProducts returns the products of a category, or all of them for an empty or "all" category
func (s *productService) ListProducts(ctx context.Context, category entity.Category) ([]*entity.Product, error) {
	if !category.IsValidFilter() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + category.String())
	}

	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", asRepositoryError(err, "product catalog unavailable"))
	}

	return products, nil
}

// GetProduct returns a single product
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", asRepositoryError(err, "product catalog unavailable"))
	}

	return product, nil
}
