package pricing

import (
	"pricing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulationResult is the price calculator preview for a hand-entered base price.
type SimulationResult struct {
	BasePrice         float64     `json:"base_price"`
	AdjustedPrice     float64     `json:"adjusted_price"`
	VATInclusivePrice float64     `json:"vat_inclusive_price"`
	SeniorPWDPrice    *float64    `json:"senior_pwd_price,omitempty"`
	AppliedRuleIDs    []uuid.UUID `json:"applied_rule_ids"`
}

// Compound multiplies basePrice by every matching rule in list order.
//
// Unlike PlanApply there is no priority sort and no short-circuit: two matching rules of
// -20% and -10% turn 1000 into 720 here while Apply would stop at 800. The calculator has
// always previewed this way, so the two evaluators stay separate.
func Compound(basePrice float64, category entity.Category, daysToExpiry *int, rules []*entity.PricingRule) (float64, []uuid.UUID) {
	price := decimal.NewFromFloat(basePrice)
	applied := make([]uuid.UUID, 0)

	for _, rule := range rules {
		if rule == nil || rule.RuleType != entity.RuleTypeExpirationBased {
			continue
		}
		if !MatchesDays(rule, category, daysToExpiry) {
			continue
		}

		price = price.Mul(percentMultiplier(rule.AdjustmentPercent))
		applied = append(applied, rule.ID)
	}

	return price.InexactFloat64(), applied
}

// Simulate compounds the matching rules and applies the tax overlay. It never writes.
func Simulate(basePrice float64, category entity.Category, daysToExpiry *int, rules []*entity.PricingRule, tax entity.TaxConfiguration) SimulationResult {
	adjusted, applied := Compound(basePrice, category, daysToExpiry, rules)
	overlay := Overlay(adjusted, tax)

	return SimulationResult{
		BasePrice:         basePrice,
		AdjustedPrice:     adjusted,
		VATInclusivePrice: overlay.VATInclusivePrice,
		SeniorPWDPrice:    overlay.SeniorPWDPrice,
		AppliedRuleIDs:    applied,
	}
}
