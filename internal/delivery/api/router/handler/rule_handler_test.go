package handler

import (
	"net/http"
	"testing"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	mockUsecase "pricing/internal/mocks/usecase"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRuleHandler(t *testing.T) (*RuleHandler, *mockUsecase.MockRuleUsecase) {
	ruleUC := mockUsecase.NewMockRuleUsecase(t)

	return NewRuleHandler(RuleHandlerParams{RuleUC: ruleUC}), ruleUC
}

func TestRuleHandler_ListRules(t *testing.T) {
	t.Parallel()

	active := true
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *mockUsecase.MockRuleUsecase)
		wantStatus int
	}{
		{
			name:  "all rules",
			query: "",
			setupMock: func(m *mockUsecase.MockRuleUsecase) {
				m.EXPECT().ListRules(mock.Anything, (*bool)(nil)).Return([]*entity.PricingRule{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "active only",
			query: "?active=true",
			setupMock: func(m *mockUsecase.MockRuleUsecase) {
				m.EXPECT().ListRules(mock.Anything, &active).Return([]*entity.PricingRule{{Name: "Clearance"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad active flag",
			query:      "?active=maybe",
			setupMock:  func(m *mockUsecase.MockRuleUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "storage down",
			query: "",
			setupMock: func(m *mockUsecase.MockRuleUsecase) {
				m.EXPECT().ListRules(mock.Anything, (*bool)(nil)).Return(nil, domainerrors.ErrRepositoryUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, ruleUC := createTestRuleHandler(t)
			tt.setupMock(ruleUC)

			c, rec := newTestContext(http.MethodGet, "/api/v1/rules"+tt.query, "")
			require.NoError(t, h.ListRules(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRuleHandler_CreateRule(t *testing.T) {
	t.Parallel()

	t.Run("creates an active rule by default", func(t *testing.T) {
		t.Parallel()

		h, ruleUC := createTestRuleHandler(t)
		ruleUC.EXPECT().CreateRule(mock.Anything, mock.MatchedBy(func(in usecase.CreateRuleInput) bool {
			return in.Name == "Near expiry" &&
				in.RuleType == entity.RuleTypeExpirationBased &&
				in.IsActive &&
				in.ConditionDays != nil && *in.ConditionDays == 3 &&
				in.AdjustmentPercent == -20 &&
				in.AppliesToCategory == entity.CategoryFresh
		})).Return(&entity.PricingRule{ID: uuid.New(), Name: "Near expiry"}, nil)

		body := `{"name":"Near expiry","rule_type":"expiration_based","condition_days":3,"adjustment_percent":-20,"applies_to_category":"fresh"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/rules", body)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects unknown rule type", func(t *testing.T) {
		t.Parallel()

		h, _ := createTestRuleHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/rules", `{"name":"x","rule_type":"weather"}`)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("rejects markdown of 100 percent or more", func(t *testing.T) {
		t.Parallel()

		h, _ := createTestRuleHandler(t)
		body := `{"name":"Free","rule_type":"expiration_based","condition_days":1,"adjustment_percent":-100}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/rules", body)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("accepts negative condition days", func(t *testing.T) {
		t.Parallel()

		h, ruleUC := createTestRuleHandler(t)
		ruleUC.EXPECT().CreateRule(mock.Anything, mock.MatchedBy(func(in usecase.CreateRuleInput) bool {
			return in.ConditionDays != nil && *in.ConditionDays == -3
		})).Return(&entity.PricingRule{ID: uuid.New(), Name: "Expired"}, nil)

		body := `{"name":"Expired","rule_type":"expiration_based","condition_days":-3,"adjustment_percent":-50}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/rules", body)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()

		h, _ := createTestRuleHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/rules", `{"name":`)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRuleHandler_SetRuleActive(t *testing.T) {
	t.Parallel()

	ruleID := uuid.New()

	tests := []struct {
		name       string
		id         string
		body       string
		setupMock  func(m *mockUsecase.MockRuleUsecase)
		wantStatus int
	}{
		{
			name: "deactivates",
			id:   ruleID.String(),
			body: `{"is_active":false}`,
			setupMock: func(m *mockUsecase.MockRuleUsecase) {
				m.EXPECT().SetRuleActive(mock.Anything, ruleID, false).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown rule",
			id:   ruleID.String(),
			body: `{"is_active":true}`,
			setupMock: func(m *mockUsecase.MockRuleUsecase) {
				m.EXPECT().SetRuleActive(mock.Anything, ruleID, true).Return(domainerrors.ErrRuleNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			body:       `{"is_active":true}`,
			setupMock:  func(m *mockUsecase.MockRuleUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing flag",
			id:         ruleID.String(),
			body:       `{}`,
			setupMock:  func(m *mockUsecase.MockRuleUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, ruleUC := createTestRuleHandler(t)
			tt.setupMock(ruleUC)

			c, rec := newTestContext(http.MethodPatch, "/api/v1/rules/"+tt.id+"/active", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, h.SetRuleActive(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
