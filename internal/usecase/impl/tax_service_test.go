package impl

import (
	"context"
	"math"
	"testing"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	mockRepo "pricing/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxService_Overlay(t *testing.T) {
	store := mockRepo.NewMockTaxConfigStore(t)
	svc := NewTaxService(store, newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().Load(ctx).Return(&entity.TaxConfiguration{
		VATRatePercent:            12,
		VATInclusive:              true,
		SeniorPWDDiscountEnabled:  true,
		WithholdingTaxEnabled:     true,
		WithholdingTaxRatePercent: 2,
	}, nil)

	result, err := svc.Overlay(ctx, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100, result.FinalPrice, 1e-9)
	assert.InDelta(t, 112, result.VATInclusivePrice, 1e-9)
	require.NotNil(t, result.SeniorPWDPrice)
	assert.InDelta(t, 80, *result.SeniorPWDPrice, 1e-9)
}

func TestTaxService_OverlayStoreFailure(t *testing.T) {
	store := mockRepo.NewMockTaxConfigStore(t)
	svc := NewTaxService(store, newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().Load(ctx).Return(nil, errors.New("permission denied"))

	_, err := svc.Overlay(ctx, 100)
	assert.ErrorIs(t, err, domainerrors.ErrRepositoryUnavailable)
}

func TestTaxService_SaveConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       *entity.TaxConfiguration
		wantSave  bool
		wantError error
	}{
		{name: "valid", cfg: &entity.TaxConfiguration{VATRatePercent: 12, VATInclusive: true}, wantSave: true},
		{name: "nil", cfg: nil, wantError: domainerrors.ErrValidationFailed},
		{name: "negative vat", cfg: &entity.TaxConfiguration{VATRatePercent: -1}, wantError: domainerrors.ErrValidationFailed},
		{name: "vat over 100", cfg: &entity.TaxConfiguration{VATRatePercent: 101}, wantError: domainerrors.ErrValidationFailed},
		{name: "NaN withholding", cfg: &entity.TaxConfiguration{WithholdingTaxRatePercent: math.NaN()}, wantError: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := mockRepo.NewMockTaxConfigStore(t)
			svc := NewTaxService(store, newDiscardLogger())
			ctx := context.Background()

			if tt.wantSave {
				store.EXPECT().Save(ctx, tt.cfg).Return(nil)
			}

			err := svc.SaveConfiguration(ctx, tt.cfg)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
