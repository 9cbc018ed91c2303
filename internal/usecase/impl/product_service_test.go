package impl

import (
	"context"
	"testing"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	mockRepo "pricing/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListProducts(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(productRepo)
	ctx := context.Background()
	products := []*entity.Product{newProduct(10, entity.CategoryFresh)}

	productRepo.EXPECT().
		ListProducts(ctx, repository.ProductFilter{Category: entity.CategoryFresh}).
		Return(products, nil)

	got, err := svc.ListProducts(ctx, entity.CategoryFresh)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	_, err = svc.ListProducts(ctx, "dairy")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_GetProductNotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(productRepo)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().FindProductByID(ctx, id).Return(nil, domainerrors.ErrProductNotFound)

	product, err := svc.GetProduct(ctx, id)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
