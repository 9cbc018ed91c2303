package pricing

import (
	"pricing/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// seniorPWDMultiplier applies the fixed 20% statutory senior citizen / PWD discount.
// The rate is set by law, not by TaxConfiguration.
var seniorPWDMultiplier = decimal.RequireFromString("0.8")

// OverlayResult holds the customer-facing prices derived from a rule-adjusted price.
type OverlayResult struct {
	FinalPrice        float64  `json:"final_price"`
	VATInclusivePrice float64  `json:"vat_inclusive_price"`
	SeniorPWDPrice    *float64 `json:"senior_pwd_price,omitempty"`
}

// Overlay computes the VAT-inclusive price and, when enabled, the senior/PWD price.
// The senior/PWD price is taken from finalPrice regardless of VAT settings.
// Withholding tax fields are ignored.
func Overlay(finalPrice float64, cfg entity.TaxConfiguration) OverlayResult {
	result := OverlayResult{
		FinalPrice:        finalPrice,
		VATInclusivePrice: finalPrice,
	}

	if cfg.VATInclusive {
		result.VATInclusivePrice = ApplyPercent(finalPrice, cfg.VATRatePercent)
	}

	if cfg.SeniorPWDDiscountEnabled {
		discounted := decimal.NewFromFloat(finalPrice).Mul(seniorPWDMultiplier).InexactFloat64()
		result.SeniorPWDPrice = &discounted
	}

	return result
}
