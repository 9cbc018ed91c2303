// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts returns the products matching filter ordered by creation time.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx)
	if !filter.Category.IsAll() {
		query = query.Where("category = ?", filter.Category.String())
	}

	if err := query.
		Order("created_at ASC, id ASC").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewRepositoryUnavailableError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewRepositoryUnavailableError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// UpdatePrice writes a new selling price. With ExpectedPrice set the write only lands when
// the stored price still equals it.
func (repo *productRepository) UpdatePrice(ctx context.Context, update repository.PriceUpdate) error {
	updates := map[string]any{
		"selling_price": decimal.NewFromFloat(update.SellingPrice),
	}
	if update.AppliedRuleID != nil {
		updates["last_applied_rule_id"] = *update.AppliedRuleID
	}

	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", update.ProductID)
	if update.ExpectedPrice != nil {
		query = query.Where("selling_price = ?", decimal.NewFromFloat(*update.ExpectedPrice).Round(6))
	}

	result := query.Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("selling price violates a catalog constraint")
		}

		return domainerrors.NewRepositoryUnavailableError(result.Error, "failed to update selling price")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	if update.ExpectedPrice == nil {
		return domainerrors.ErrProductNotFound
	}

	// Distinguish a missing product from a lost race.
	if _, err := repo.FindProductByID(ctx, update.ProductID); err != nil {
		return err
	}

	return domainerrors.ErrConflict
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                data.ID,
		Name:              data.Name,
		SKU:               data.SKU,
		Category:          entity.Category(data.Category),
		SellingPrice:      data.SellingPrice.InexactFloat64(),
		CostPrice:         data.CostPrice.InexactFloat64(),
		ExpirationDate:    data.ExpirationDate,
		LastAppliedRuleID: data.LastAppliedRuleID,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                data.ID,
		Name:              data.Name,
		SKU:               data.SKU,
		Category:          data.Category.String(),
		SellingPrice:      decimal.NewFromFloat(data.SellingPrice),
		CostPrice:         decimal.NewFromFloat(data.CostPrice),
		ExpirationDate:    data.ExpirationDate,
		LastAppliedRuleID: data.LastAppliedRuleID,
		UpdatedAt:         data.UpdatedAt,
	}
}
