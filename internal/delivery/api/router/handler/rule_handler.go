package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pricing/internal/delivery/api/response"
	"pricing/internal/domain/entity"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RuleHandlerParams holds dependencies for RuleHandler, injected by Fx.
type RuleHandlerParams struct {
	fx.In

	RuleUC usecase.RuleUsecase
	Logger *slog.Logger
}

// RuleHandler holds dependencies for pricing rule handlers
type RuleHandler struct {
	ruleUC usecase.RuleUsecase
	logger *slog.Logger
}

// NewRuleHandler is the constructor for RuleHandler
func NewRuleHandler(params RuleHandlerParams) *RuleHandler {
	return &RuleHandler{
		ruleUC: params.RuleUC,
		logger: params.Logger,
	}
}

// CreateRuleRequest represents the request body for creating a pricing rule
type CreateRuleRequest struct {
	Name              string  `json:"name" validate:"required,max=255"`
	RuleType          string  `json:"rule_type" validate:"required,rule_type"`
	IsActive          *bool   `json:"is_active"`
	Priority          int     `json:"priority"`
	ConditionDays     *int    `json:"condition_days"`
	AdjustmentPercent float64 `json:"adjustment_percent" validate:"gt=-100,lte=10000"`
	AppliesToCategory string  `json:"applies_to_category" validate:"omitempty,category"`
	Description       string  `json:"description" validate:"max=1000"`
}

// SetRuleActiveRequest represents the request body for toggling a rule
type SetRuleActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ListRules handles listing rules, optionally filtered by ?active=true|false
func (h *RuleHandler) ListRules(c echo.Context) error {
	var activeOnly *bool
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "active must be true or false")
		}
		activeOnly = &active
	}

	rules, err := h.ruleUC.ListRules(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rules)
}

// CreateRule handles pricing rule creation
func (h *RuleHandler) CreateRule(c echo.Context) error {
	var req CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rule, err := h.ruleUC.CreateRule(c.Request().Context(), usecase.CreateRuleInput{
		Name:              req.Name,
		RuleType:          entity.RuleType(req.RuleType),
		IsActive:          isActive,
		Priority:          req.Priority,
		ConditionDays:     req.ConditionDays,
		AdjustmentPercent: req.AdjustmentPercent,
		AppliesToCategory: entity.Category(req.AppliesToCategory),
		Description:       req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rule)
}

// SetRuleActive handles activating or deactivating a rule
func (h *RuleHandler) SetRuleActive(c echo.Context) error {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rule ID")
	}

	var req SetRuleActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rule state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.ruleUC.SetRuleActive(c.Request().Context(), ruleID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":        ruleID,
		"is_active": *req.IsActive,
	})
}
