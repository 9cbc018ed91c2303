package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "pricing/internal/delivery/context"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/usecase"

	"github.com/google/uuid"
)

// Bounds for a rule's adjustment percent. The lower bound is exclusive.
const (
	minAdjustmentPercent = -100.0
	maxAdjustmentPercent = 10000.0
)

type ruleService struct {
	ruleRepo repository.PricingRuleRepository
	now      func() time.Time
	logger   *slog.Logger
}

// NewRuleService creates a new rule service instance
func NewRuleService(ruleRepo repository.PricingRuleRepository, logger *slog.Logger) usecase.RuleUsecase {
	return &ruleService{
		ruleRepo: ruleRepo,
		now:      time.Now,
		logger:   logger,
	}
}

// CreateRule validates and stores a new pricing rule
func (s *ruleService) CreateRule(ctx context.Context, input usecase.CreateRuleInput) (*entity.PricingRule, error) {
	if err := validateRuleInput(input); err != nil {
		return nil, err
	}

	category := input.AppliesToCategory
	if category.IsAll() {
		category = entity.CategoryAll
	}

	now := s.now().UTC()
	rule := &entity.PricingRule{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(input.Name),
		RuleType:          input.RuleType,
		IsActive:          input.IsActive,
		Priority:          input.Priority,
		ConditionDays:     input.ConditionDays,
		AdjustmentPercent: input.AdjustmentPercent,
		AppliesToCategory: category,
		Description:       input.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.ruleRepo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create pricing rule: %w", asRepositoryError(err, "pricing rules unavailable"))
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Created pricing rule",
		slog.String("rule_id", rule.ID.String()),
		slog.String("rule_type", rule.RuleType.String()),
		slog.Int("priority", rule.Priority),
	)

	return rule, nil
}

// ListRules returns rules in creation order
func (s *ruleService) ListRules(ctx context.Context, activeOnly *bool) ([]*entity.PricingRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx, repository.RuleFilter{IsActive: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing rules: %w", asRepositoryError(err, "pricing rules unavailable"))
	}

	return rules, nil
}

// SetRuleActive activates or deactivates a rule
func (s *ruleService) SetRuleActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.ruleRepo.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("failed to set rule active state: %w", asRepositoryError(err, "pricing rules unavailable"))
	}

	return nil
}

func validateRuleInput(input usecase.CreateRuleInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.RuleType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown rule type: " + input.RuleType.String())
	}
	if !input.AppliesToCategory.IsValidFilter() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.AppliesToCategory.String())
	}
	if math.IsNaN(input.AdjustmentPercent) || math.IsInf(input.AdjustmentPercent, 0) {
		return domainerrors.ErrValidationFailed.WithDetails("adjustment percent must be a finite number")
	}
	// Prices must stay positive and the percent must fit numeric(9,4).
	if input.AdjustmentPercent <= minAdjustmentPercent || input.AdjustmentPercent > maxAdjustmentPercent {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("adjustment percent must be greater than %g and at most %g", minAdjustmentPercent, maxAdjustmentPercent))
	}
	if input.RuleType == entity.RuleTypeExpirationBased && input.ConditionDays == nil {
		return domainerrors.ErrValidationFailed.WithDetails("expiration based rules need condition days")
	}

	return nil
}
