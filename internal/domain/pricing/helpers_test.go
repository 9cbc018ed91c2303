package pricing

import (
	"time"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

var testToday = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

func expiringIn(days int) *time.Time {
	at := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)

	return &at
}

func expirationRule(name string, priority, conditionDays int, percent float64) *entity.PricingRule {
	return &entity.PricingRule{
		ID:                uuid.New(),
		Name:              name,
		RuleType:          entity.RuleTypeExpirationBased,
		IsActive:          true,
		Priority:          priority,
		ConditionDays:     intPtr(conditionDays),
		AdjustmentPercent: percent,
	}
}

func newProduct(category entity.Category, price float64, expiresInDays *int) *entity.Product {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "test product",
		Category:     category,
		SellingPrice: price,
	}
	if expiresInDays != nil {
		product.ExpirationDate = expiringIn(*expiresInDays)
	}

	return product
}
