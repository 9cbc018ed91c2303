package pricing

import (
	"cmp"
	"slices"
	"time"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// AppliedRuleReasonPrefix prefixes the audit reason of every change made by Apply.
const AppliedRuleReasonPrefix = "Applied rule: "

// Change is a price change decided by an evaluator but not yet committed.
type Change struct {
	Product  *entity.Product
	Rule     *entity.PricingRule // Nil for changes not driven by a rule.
	OldPrice float64
	NewPrice float64
	Reason   string
}

// RuleID returns the ID of the driving rule, or nil.
func (c Change) RuleID() *uuid.UUID {
	if c.Rule == nil {
		return nil
	}
	id := c.Rule.ID

	return &id
}

// ActiveRules returns the active rules in their original order.
func ActiveRules(rules []*entity.PricingRule) []*entity.PricingRule {
	active := make([]*entity.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if rule != nil && rule.IsActive {
			active = append(active, rule)
		}
	}

	return active
}

// SortByPriority returns a copy of rules ordered by priority, highest first.
// Equal priorities keep their input order.
func SortByPriority(rules []*entity.PricingRule) []*entity.PricingRule {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b *entity.PricingRule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	return sorted
}

// FirstMatch walks priority-sorted rules and returns the first one matching product.
// Lower-priority rules are never consulted once a match is found.
func FirstMatch(sorted []*entity.PricingRule, product *entity.Product, today time.Time) *entity.PricingRule {
	for _, rule := range sorted {
		if Matches(rule, product, today) {
			return rule
		}
	}

	return nil
}

// PlanApply decides the Apply outcome for one product against priority-sorted rules.
// It returns false when nothing should be written: no rule matched, the price would not
// change, or the product is already priced by the matching rule.
func PlanApply(sorted []*entity.PricingRule, product *entity.Product, today time.Time) (Change, bool) {
	rule := FirstMatch(sorted, product, today)
	if rule == nil {
		return Change{}, false
	}

	if product.LastAppliedRuleID != nil && *product.LastAppliedRuleID == rule.ID {
		return Change{}, false
	}

	newPrice := ApplyPercent(product.SellingPrice, rule.AdjustmentPercent)
	if SamePrice(newPrice, product.SellingPrice) {
		return Change{}, false
	}

	return Change{
		Product:  product,
		Rule:     rule,
		OldPrice: product.SellingPrice,
		NewPrice: newPrice,
		Reason:   AppliedRuleReasonPrefix + rule.Name,
	}, true
}
