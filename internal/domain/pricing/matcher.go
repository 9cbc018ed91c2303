package pricing

import (
	"math"
	"time"

	"pricing/internal/domain/entity"
)

const day = 24 * time.Hour

// DaysToExpiry returns ceil((expiration - today) / 1 day). Already expired products yield
// zero or a negative count.
func DaysToExpiry(expiration, today time.Time) int {
	return int(math.Ceil(float64(expiration.Sub(today)) / float64(day)))
}

// StartOfDay returns midnight of the calendar day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Matches reports whether rule applies to product on the given day.
func Matches(rule *entity.PricingRule, product *entity.Product, today time.Time) bool {
	if rule == nil || product == nil {
		return false
	}

	var daysToExpiry *int
	if product.ExpirationDate != nil {
		days := DaysToExpiry(*product.ExpirationDate, today)
		daysToExpiry = &days
	}

	return MatchesDays(rule, product.Category, daysToExpiry)
}

// MatchesDays is Matches with the day count supplied directly, as the price calculator does.
// A nil daysToExpiry means the product has no expiration date.
func MatchesDays(rule *entity.PricingRule, category entity.Category, daysToExpiry *int) bool {
	if rule == nil || !rule.IsActive {
		return false
	}

	if !rule.AppliesTo(category) {
		return false
	}

	switch rule.RuleType {
	case entity.RuleTypeExpirationBased:
		if daysToExpiry == nil || rule.ConditionDays == nil {
			return false
		}

		return *daysToExpiry <= *rule.ConditionDays
	case entity.RuleTypeAgeBased, entity.RuleTypeDemandBased, entity.RuleTypeManual:
		// Extension point: these types have no product signal defined yet.
		return false
	default:
		return false
	}
}
