package pricing

import (
	"fmt"
	"math"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// PsychologicalReason is the audit reason for the .99 rounding pass.
const PsychologicalReason = "Psychological pricing"

var ninetyNine = decimal.RequireFromString("0.99")

// BulkMultiplier validates a bulk adjustment request and returns its price multiplier:
// 1 + percent/100 for increase, 1 - percent/100 for decrease.
func BulkMultiplier(percent float64, direction entity.AdjustDirection) (float64, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent <= 0 {
		return 0, domainerrors.ErrInvalidPercent
	}

	switch direction {
	case entity.AdjustIncrease:
		return percentMultiplier(percent).InexactFloat64(), nil
	case entity.AdjustDecrease:
		return percentMultiplier(-percent).InexactFloat64(), nil
	default:
		return 0, domainerrors.ErrValidationFailed.WithDetails("direction must be increase or decrease")
	}
}

// BulkPrice returns round2(price * multiplier).
func BulkPrice(price, multiplier float64) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(multiplier)).Round(2).InexactFloat64()
}

// BulkReason builds the audit reason for a bulk adjustment, e.g. "Bulk increase 5% (frozen)".
func BulkReason(percent float64, direction entity.AdjustDirection, category entity.Category) string {
	scope := entity.CategoryAll
	if !category.IsAll() {
		scope = category
	}

	return fmt.Sprintf("Bulk %s %s%% (%s)", direction, decimal.NewFromFloat(percent).String(), scope)
}

// PsychologicalPrice returns floor(price) + 0.99.
func PsychologicalPrice(price float64) float64 {
	return decimal.NewFromFloat(price).Floor().Add(ninetyNine).InexactFloat64()
}
