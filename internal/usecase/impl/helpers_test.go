package impl

import (
	"io"
	"log/slog"
	"time"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func intPtr(v int) *int {
	return &v
}

func newProduct(price float64, category entity.Category) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		Name:         "product-" + category.String(),
		Category:     category,
		SellingPrice: price,
	}
}

func expiringProduct(price float64, category entity.Category, days int) *entity.Product {
	product := newProduct(price, category)
	expiration := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	product.ExpirationDate = &expiration

	return product
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
		AppliesToCategory: entity.CategoryAll,
	}
}
