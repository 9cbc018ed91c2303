package conflict

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pricing/config"
	"pricing/internal/domain/constants"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	mockRepo "pricing/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNoopDetector(t *testing.T) {
	t.Parallel()

	detector := NewNoopDetector()
	product := &entity.Product{ID: uuid.New(), SellingPrice: 10}

	assert.NoError(t, detector.BeforeCommit(context.Background(), product))
	assert.Nil(t, detector.ExpectedPrice(product))
}

func TestOptimisticDetector_BeforeCommit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		storedPrice float64
		wantErr     error
	}{
		{name: "unchanged", storedPrice: 10},
		{name: "repriced concurrently", storedPrice: 12.5, wantErr: domainerrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			productRepo := mockRepo.NewMockProductRepository(t)
			detector := NewOptimisticDetector(productRepo)
			ctx := context.Background()
			product := &entity.Product{ID: uuid.New(), SellingPrice: 10}

			productRepo.EXPECT().
				FindProductByID(ctx, product.ID).
				Return(&entity.Product{ID: product.ID, SellingPrice: tt.storedPrice}, nil)

			err := detector.BeforeCommit(ctx, product)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOptimisticDetector_ExpectedPrice(t *testing.T) {
	t.Parallel()

	detector := NewOptimisticDetector(mockRepo.NewMockProductRepository(t))
	product := &entity.Product{ID: uuid.New(), SellingPrice: 42.5}

	expected := detector.ExpectedPrice(product)
	require.NotNil(t, expected)
	assert.InDelta(t, 42.5, *expected, 1e-9)

	product.SellingPrice = 1
	assert.InDelta(t, 42.5, *expected, 1e-9)
}

func TestNewDetector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     string
		wantType any
		wantErr  bool
	}{
		{name: "default", mode: "", wantType: noopDetector{}},
		{name: "none", mode: constants.ConflictDetectionNone, wantType: noopDetector{}},
		{name: "optimistic", mode: constants.ConflictDetectionOptimistic, wantType: &optimisticDetector{}},
		{name: "unknown", mode: "pessimistic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			detector, err := NewDetector(Params{
				Config:      &config.Config{Pricing: &config.PricingConfig{ConflictDetection: tt.mode}},
				Logger:      newDiscardLogger(),
				ProductRepo: mockRepo.NewMockProductRepository(t),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, detector)
		})
	}
}
