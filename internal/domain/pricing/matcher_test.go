package pricing

import (
	"testing"
	"time"

	"pricing/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDaysToExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expiration time.Time
		want       int
	}{
		{name: "partial day rounds up", expiration: *expiringIn(3), want: 3},
		{name: "same instant", expiration: testToday, want: 0},
		{name: "later today", expiration: testToday.Add(2 * time.Hour), want: 1},
		{name: "expired yesterday", expiration: *expiringIn(-1), want: -1},
		{name: "expired two days ago", expiration: testToday.AddDate(0, 0, -2), want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DaysToExpiry(tt.expiration, testToday))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 1, 23, 30, 0, 0, time.UTC)
	plus8 := time.FixedZone("UTC+8", 8*60*60)
	expiration := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)

	utcToday := StartOfDay(now, time.UTC)
	localToday := StartOfDay(now, plus8)

	assert.True(t, utcToday.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, localToday.Equal(time.Date(2026, time.January, 2, 0, 0, 0, 0, plus8)))
	assert.Equal(t, 2, DaysToExpiry(expiration, utcToday))
	assert.Equal(t, 1, DaysToExpiry(expiration, localToday))
}

func TestMatches_InactiveRuleNeverMatches(t *testing.T) {
	t.Parallel()

	ruleTypes := []entity.RuleType{
		entity.RuleTypeExpirationBased,
		entity.RuleTypeAgeBased,
		entity.RuleTypeDemandBased,
		entity.RuleTypeManual,
	}

	for _, ruleType := range ruleTypes {
		for _, category := range []entity.Category{"", entity.CategoryAll, entity.CategoryFresh} {
			rule := &entity.PricingRule{
				RuleType:          ruleType,
				IsActive:          false,
				ConditionDays:     intPtr(1000),
				AppliesToCategory: category,
				AdjustmentPercent: -50,
			}
			product := newProduct(entity.CategoryFresh, 10, intPtr(0))

			assert.False(t, Matches(rule, product, testToday), "rule type %s, category %q", ruleType, category)
		}
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    *entity.PricingRule
		product *entity.Product
		want    bool
	}{
		{
			name:    "within condition days",
			rule:    expirationRule("r", 1, 5, -20),
			product: newProduct(entity.CategoryFresh, 100, intPtr(3)),
			want:    true,
		},
		{
			name:    "exactly at condition days",
			rule:    expirationRule("r", 1, 5, -20),
			product: newProduct(entity.CategoryFresh, 100, intPtr(5)),
			want:    true,
		},
		{
			name:    "beyond condition days",
			rule:    expirationRule("r", 1, 5, -20),
			product: newProduct(entity.CategoryFresh, 100, intPtr(6)),
			want:    false,
		},
		{
			name:    "already expired still matches",
			rule:    expirationRule("r", 1, 5, -20),
			product: newProduct(entity.CategoryFresh, 100, intPtr(-4)),
			want:    true,
		},
		{
			name:    "product without expiration date",
			rule:    expirationRule("r", 1, 5, -20),
			product: newProduct(entity.CategoryFresh, 100, nil),
			want:    false,
		},
		{
			name: "rule without condition days",
			rule: &entity.PricingRule{
				RuleType: entity.RuleTypeExpirationBased,
				IsActive: true,
			},
			product: newProduct(entity.CategoryFresh, 100, intPtr(1)),
			want:    false,
		},
		{
			name: "category mismatch",
			rule: func() *entity.PricingRule {
				r := expirationRule("r", 1, 5, -20)
				r.AppliesToCategory = entity.CategoryFrozen

				return r
			}(),
			product: newProduct(entity.CategoryFresh, 100, intPtr(1)),
			want:    false,
		},
		{
			name: "category all",
			rule: func() *entity.PricingRule {
				r := expirationRule("r", 1, 5, -20)
				r.AppliesToCategory = entity.CategoryAll

				return r
			}(),
			product: newProduct(entity.CategoryCanned, 100, intPtr(1)),
			want:    true,
		},
		{
			name: "age based is inert",
			rule: &entity.PricingRule{
				RuleType:      entity.RuleTypeAgeBased,
				IsActive:      true,
				ConditionDays: intPtr(100),
			},
			product: newProduct(entity.CategoryFresh, 100, intPtr(1)),
			want:    false,
		},
		{
			name: "demand based is inert",
			rule: &entity.PricingRule{
				RuleType:      entity.RuleTypeDemandBased,
				IsActive:      true,
				ConditionDays: intPtr(100),
			},
			product: newProduct(entity.CategoryFresh, 100, intPtr(1)),
			want:    false,
		},
		{
			name: "manual is inert",
			rule: &entity.PricingRule{
				RuleType: entity.RuleTypeManual,
				IsActive: true,
			},
			product: newProduct(entity.CategoryFresh, 100, intPtr(1)),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Matches(tt.rule, tt.product, testToday))
		})
	}
}

func TestMatchesDays_NilDaysNeverMatchesExpirationRule(t *testing.T) {
	t.Parallel()

	rule := expirationRule("r", 1, 5, -20)

	assert.False(t, MatchesDays(rule, entity.CategoryFresh, nil))
	assert.True(t, MatchesDays(rule, entity.CategoryFresh, intPtr(2)))
}
