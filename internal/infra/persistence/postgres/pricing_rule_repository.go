package postgres

import (
	"context"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// pricingRuleRepository implements the repository.PricingRuleRepository interface.
type pricingRuleRepository struct {
	db *gorm.DB
}

// NewPricingRuleRepository is the constructor for pricingRuleRepository.
func NewPricingRuleRepository(db *gorm.DB) repository.PricingRuleRepository {
	return &pricingRuleRepository{
		db: db,
	}
}

// ListRules returns rules in creation order, optionally filtered by their active flag.
func (repo *pricingRuleRepository) ListRules(ctx context.Context, filter repository.RuleFilter) ([]*entity.PricingRule, error) {
	var ruleModels []*model.PricingRuleModel

	query := repo.db.WithContext(ctx)
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.
		Order("created_at ASC, id ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, domainerrors.NewRepositoryUnavailableError(err, "failed to list pricing rules")
	}

	rules := make([]*entity.PricingRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toPricingRuleDomain(ruleM))
	}

	return rules, nil
}

// CreateRule persists a new pricing rule.
func (repo *pricingRuleRepository) CreateRule(ctx context.Context, rule *entity.PricingRule) error {
	ruleM := fromPricingRuleDomain(rule)

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		if isIntegrityViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("pricing rule violates a table constraint")
		}

		return domainerrors.NewRepositoryUnavailableError(err, "failed to create pricing rule")
	}

	// Update the entity with generated values
	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// SetActive toggles a rule on or off.
func (repo *pricingRuleRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PricingRuleModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return domainerrors.NewRepositoryUnavailableError(result.Error, "failed to update pricing rule")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrRuleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPricingRuleDomain converts a GORM PricingRuleModel to a domain PricingRule entity.
func toPricingRuleDomain(data *model.PricingRuleModel) *entity.PricingRule {
	if data == nil {
		return nil
	}

	rule := &entity.PricingRule{
		ID:                data.ID,
		Name:              data.Name,
		RuleType:          entity.RuleType(data.RuleType),
		IsActive:          data.IsActive,
		Priority:          data.Priority,
		ConditionDays:     data.ConditionDays,
		AdjustmentPercent: data.AdjustmentPercent.InexactFloat64(),
		Description:       data.Description,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.AppliesToCategory != nil {
		rule.AppliesToCategory = entity.Category(*data.AppliesToCategory)
	}

	return rule
}

// fromPricingRuleDomain converts a domain PricingRule entity to a GORM PricingRuleModel.
// An "all" category filter is stored as NULL.
func fromPricingRuleDomain(data *entity.PricingRule) *model.PricingRuleModel {
	if data == nil {
		return nil
	}

	ruleM := &model.PricingRuleModel{
		ID:                data.ID,
		Name:              data.Name,
		RuleType:          data.RuleType.String(),
		IsActive:          data.IsActive,
		Priority:          data.Priority,
		ConditionDays:     data.ConditionDays,
		AdjustmentPercent: decimal.NewFromFloat(data.AdjustmentPercent),
		Description:       data.Description,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if !data.AppliesToCategory.IsAll() {
		category := data.AppliesToCategory.String()
		ruleM.AppliesToCategory = &category
	}

	return ruleM
}
