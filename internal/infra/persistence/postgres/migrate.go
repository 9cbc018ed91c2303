package postgres

import (
	"context"

	"pricing/internal/domain/entity"
	"pricing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every table owned by this service, in dependency order.
func Models() []any {
	return []any{
		&model.PricingRuleModel{},
		&model.ProductModel{},
		&model.PriceChangeLogModel{},
	}
}

// AutoMigrate creates or updates the pricing tables. Production schemas are managed by
// versioned migrations; this is for development and tests.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate pricing tables")
	}

	return nil
}

// SeedProducts inserts products, skipping IDs that already exist.
func SeedProducts(ctx context.Context, db *gorm.DB, products []*entity.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	models := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		models = append(models, fromProductDomain(product))
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to seed products")
	}

	return result.RowsAffected, nil
}
