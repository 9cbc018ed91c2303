package pricing

import (
	"testing"

	"pricing/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		finalPrice float64
		cfg        entity.TaxConfiguration
		wantVAT    float64
		wantSenior *float64
	}{
		{
			name:       "vat inclusive",
			finalPrice: 100,
			cfg:        entity.TaxConfiguration{VATRatePercent: 12, VATInclusive: true},
			wantVAT:    112,
		},
		{
			name:       "vat exclusive keeps final price",
			finalPrice: 100,
			cfg:        entity.TaxConfiguration{VATRatePercent: 12, VATInclusive: false},
			wantVAT:    100,
		},
		{
			name:       "senior discount with vat",
			finalPrice: 100,
			cfg:        entity.TaxConfiguration{VATRatePercent: 12, VATInclusive: true, SeniorPWDDiscountEnabled: true},
			wantVAT:    112,
			wantSenior: floatPtr(80),
		},
		{
			name:       "senior discount without vat",
			finalPrice: 100,
			cfg:        entity.TaxConfiguration{SeniorPWDDiscountEnabled: true},
			wantVAT:    100,
			wantSenior: floatPtr(80),
		},
		{
			name:       "withholding tax is ignored",
			finalPrice: 100,
			cfg: entity.TaxConfiguration{
				VATRatePercent:            12,
				VATInclusive:              true,
				SeniorPWDDiscountEnabled:  true,
				WithholdingTaxEnabled:     true,
				WithholdingTaxRatePercent: 2,
			},
			wantVAT:    112,
			wantSenior: floatPtr(80),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Overlay(tt.finalPrice, tt.cfg)

			assert.InDelta(t, tt.finalPrice, got.FinalPrice, 1e-9)
			assert.InDelta(t, tt.wantVAT, got.VATInclusivePrice, 1e-9)
			if tt.wantSenior == nil {
				assert.Nil(t, got.SeniorPWDPrice)

				return
			}
			require.NotNil(t, got.SeniorPWDPrice)
			assert.InDelta(t, *tt.wantSenior, *got.SeniorPWDPrice, 1e-9)
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
