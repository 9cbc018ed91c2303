package pricing

import (
	"testing"

	"pricing/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByPriority_StableDescending(t *testing.T) {
	t.Parallel()

	low := expirationRule("low", 1, 5, -5)
	highFirst := expirationRule("high-first", 10, 5, -5)
	mid := expirationRule("mid", 5, 5, -5)
	highSecond := expirationRule("high-second", 10, 5, -5)

	input := []*entity.PricingRule{low, highFirst, mid, highSecond}
	sorted := SortByPriority(input)

	require.Len(t, sorted, 4)
	assert.Equal(t, []string{"high-first", "high-second", "mid", "low"}, []string{
		sorted[0].Name, sorted[1].Name, sorted[2].Name, sorted[3].Name,
	})
	assert.Equal(t, "low", input[0].Name, "input must not be reordered")
}

func TestActiveRules(t *testing.T) {
	t.Parallel()

	active := expirationRule("active", 1, 5, -5)
	inactive := expirationRule("inactive", 1, 5, -5)
	inactive.IsActive = false

	got := ActiveRules([]*entity.PricingRule{inactive, nil, active})

	require.Len(t, got, 1)
	assert.Equal(t, "active", got[0].Name)
}

func TestPlanApply_ShortCircuitsOnHighestPriority(t *testing.T) {
	t.Parallel()

	ruleA := expirationRule("A", 10, 5, -20)
	ruleB := expirationRule("B", 5, 10, -10)
	product := newProduct(entity.CategoryFresh, 1000, intPtr(3))

	// Store order puts the lower priority rule first.
	sorted := SortByPriority([]*entity.PricingRule{ruleB, ruleA})

	change, ok := PlanApply(sorted, product, testToday)
	require.True(t, ok)
	assert.Equal(t, ruleA, change.Rule)
	assert.InDelta(t, 1000.0, change.OldPrice, 1e-9)
	assert.InDelta(t, 800.0, change.NewPrice, 1e-9)
	assert.Equal(t, "Applied rule: A", change.Reason)
	require.NotNil(t, change.RuleID())
	assert.Equal(t, ruleA.ID, *change.RuleID())
}

func TestPlanApply_FallsThroughToLowerPriority(t *testing.T) {
	t.Parallel()

	ruleA := expirationRule("A", 10, 5, -20)
	ruleB := expirationRule("B", 5, 10, -10)
	product := newProduct(entity.CategoryFresh, 1000, intPtr(8))

	change, ok := PlanApply(SortByPriority([]*entity.PricingRule{ruleA, ruleB}), product, testToday)
	require.True(t, ok)
	assert.Equal(t, ruleB, change.Rule)
	assert.InDelta(t, 900.0, change.NewPrice, 1e-9)
}

func TestPlanApply_NoOps(t *testing.T) {
	t.Parallel()

	zero := expirationRule("zero", 1, 5, 0)
	discount := expirationRule("discount", 1, 5, -20)

	t.Run("no rule matches", func(t *testing.T) {
		t.Parallel()

		product := newProduct(entity.CategoryFresh, 100, intPtr(30))
		_, ok := PlanApply([]*entity.PricingRule{discount}, product, testToday)
		assert.False(t, ok)
	})

	t.Run("zero adjustment leaves price unchanged", func(t *testing.T) {
		t.Parallel()

		product := newProduct(entity.CategoryFresh, 100, intPtr(1))
		_, ok := PlanApply([]*entity.PricingRule{zero}, product, testToday)
		assert.False(t, ok)
	})

	t.Run("zero adjustment shadows lower priority rule", func(t *testing.T) {
		t.Parallel()

		shadowing := expirationRule("shadow", 50, 5, 0)
		product := newProduct(entity.CategoryFresh, 100, intPtr(1))
		_, ok := PlanApply(SortByPriority([]*entity.PricingRule{discount, shadowing}), product, testToday)
		assert.False(t, ok)
	})

	t.Run("already priced by the matching rule", func(t *testing.T) {
		t.Parallel()

		product := newProduct(entity.CategoryFresh, 80, intPtr(1))
		product.LastAppliedRuleID = &discount.ID
		_, ok := PlanApply([]*entity.PricingRule{discount}, product, testToday)
		assert.False(t, ok)
	})
}

func TestPlanApply_NewRuleReplacesPreviouslyAppliedRule(t *testing.T) {
	t.Parallel()

	weekRule := expirationRule("week", 5, 7, -10)
	urgentRule := expirationRule("urgent", 10, 2, -50)

	product := newProduct(entity.CategoryFresh, 90, intPtr(1))
	product.LastAppliedRuleID = &weekRule.ID

	change, ok := PlanApply(SortByPriority([]*entity.PricingRule{weekRule, urgentRule}), product, testToday)
	require.True(t, ok)
	assert.Equal(t, urgentRule, change.Rule)
	assert.InDelta(t, 45.0, change.NewPrice, 1e-9)
}
