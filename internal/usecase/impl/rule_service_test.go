package impl

import (
	"context"
	"math"
	"testing"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	mockRepo "pricing/internal/mocks/repository"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ruleServiceFixtures struct {
	service  usecase.RuleUsecase
	ruleRepo *mockRepo.MockPricingRuleRepository
}

func createTestRuleService(t *testing.T) ruleServiceFixtures {
	ruleRepo := mockRepo.NewMockPricingRuleRepository(t)
	svc := NewRuleService(ruleRepo, newDiscardLogger())
	svc.(*ruleService).now = fixedClock

	return ruleServiceFixtures{
		service:  svc,
		ruleRepo: ruleRepo,
	}
}

func TestRuleService_CreateRule(t *testing.T) {
	fx := createTestRuleService(t)
	ctx := context.Background()

	fx.ruleRepo.EXPECT().
		CreateRule(ctx, mock.AnythingOfType("*entity.PricingRule")).
		Return(nil)

	rule, err := fx.service.CreateRule(ctx, usecase.CreateRuleInput{
		Name:              "  Near expiry ",
		RuleType:          entity.RuleTypeExpirationBased,
		IsActive:          true,
		Priority:          10,
		ConditionDays:     intPtr(5),
		AdjustmentPercent: -20,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, "Near expiry", rule.Name)
	assert.Equal(t, entity.CategoryAll, rule.AppliesToCategory)
	assert.Equal(t, 5, *rule.ConditionDays)
	assert.Equal(t, testNow, rule.CreatedAt)
}

func TestRuleService_CreateRuleAcceptsInertTypes(t *testing.T) {
	fx := createTestRuleService(t)
	ctx := context.Background()

	fx.ruleRepo.EXPECT().CreateRule(ctx, mock.Anything).Return(nil)

	rule, err := fx.service.CreateRule(ctx, usecase.CreateRuleInput{
		Name:              "Slow movers",
		RuleType:          entity.RuleTypeDemandBased,
		AdjustmentPercent: -5,
		AppliesToCategory: entity.CategoryCanned,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryCanned, rule.AppliesToCategory)
	assert.False(t, rule.IsActive)
}

func TestRuleService_CreateRuleValidation(t *testing.T) {
	t.Parallel()

	valid := usecase.CreateRuleInput{
		Name:              "Rule",
		RuleType:          entity.RuleTypeExpirationBased,
		ConditionDays:     intPtr(3),
		AdjustmentPercent: -10,
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateRuleInput)
	}{
		{name: "blank name", mutate: func(in *usecase.CreateRuleInput) { in.Name = "   " }},
		{name: "unknown type", mutate: func(in *usecase.CreateRuleInput) { in.RuleType = "weather_based" }},
		{name: "unknown category", mutate: func(in *usecase.CreateRuleInput) { in.AppliesToCategory = "dairy" }},
		{name: "expiration without days", mutate: func(in *usecase.CreateRuleInput) { in.ConditionDays = nil }},
		{name: "infinite percent", mutate: func(in *usecase.CreateRuleInput) { in.AdjustmentPercent = math.Inf(-1) }},
		{name: "full markdown", mutate: func(in *usecase.CreateRuleInput) { in.AdjustmentPercent = -100 }},
		{name: "below full markdown", mutate: func(in *usecase.CreateRuleInput) { in.AdjustmentPercent = -150 }},
		{name: "percent past column range", mutate: func(in *usecase.CreateRuleInput) { in.AdjustmentPercent = 1e6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestRuleService(t)

			input := valid
			tt.mutate(&input)

			rule, err := fx.service.CreateRule(context.Background(), input)
			assert.Nil(t, rule)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRuleService_CreateRuleBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		conditionDays int
		percent       float64
	}{
		{name: "already expired products", conditionDays: -2, percent: -90},
		{name: "near full markdown", conditionDays: 1, percent: -99.99},
		{name: "largest markup", conditionDays: 30, percent: maxAdjustmentPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestRuleService(t)
			fx.ruleRepo.EXPECT().CreateRule(mock.Anything, mock.Anything).Return(nil)

			rule, err := fx.service.CreateRule(context.Background(), usecase.CreateRuleInput{
				Name:              "Boundary",
				RuleType:          entity.RuleTypeExpirationBased,
				ConditionDays:     intPtr(tt.conditionDays),
				AdjustmentPercent: tt.percent,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.conditionDays, *rule.ConditionDays)
		})
	}
}

func TestRuleService_ListRules(t *testing.T) {
	fx := createTestRuleService(t)
	ctx := context.Background()
	active := true
	rules := []*entity.PricingRule{expirationRule("A", 1, 3, -5)}

	fx.ruleRepo.EXPECT().ListRules(ctx, repository.RuleFilter{IsActive: &active}).Return(rules, nil)

	got, err := fx.service.ListRules(ctx, &active)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}

func TestRuleService_SetRuleActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestRuleService(t)
		id := uuid.New()
		fx.ruleRepo.EXPECT().SetActive(ctx, id, false).Return(nil)

		require.NoError(t, fx.service.SetRuleActive(ctx, id, false))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestRuleService(t)
		id := uuid.New()
		fx.ruleRepo.EXPECT().SetActive(ctx, id, true).Return(domainerrors.ErrRuleNotFound)

		err := fx.service.SetRuleActive(ctx, id, true)
		assert.ErrorIs(t, err, domainerrors.ErrRuleNotFound)
	})

	t.Run("store down", func(t *testing.T) {
		fx := createTestRuleService(t)
		id := uuid.New()
		fx.ruleRepo.EXPECT().SetActive(ctx, id, true).Return(errors.New("broken pipe"))

		err := fx.service.SetRuleActive(ctx, id, true)
		assert.ErrorIs(t, err, domainerrors.ErrRepositoryUnavailable)
	})
}
