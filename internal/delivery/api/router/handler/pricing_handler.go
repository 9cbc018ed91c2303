package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pricing/internal/delivery/api/middleware"
	"pricing/internal/delivery/api/response"
	"pricing/internal/domain/entity"
	"pricing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PricingHandlerParams holds dependencies for PricingHandler, injected by Fx.
type PricingHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	AuditUC   usecase.AuditUsecase
	Logger    *slog.Logger
}

// PricingHandler exposes the price calculator and the catalog repricing operations
type PricingHandler struct {
	pricingUC usecase.PricingUsecase
	auditUC   usecase.AuditUsecase
	logger    *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler
func NewPricingHandler(params PricingHandlerParams) *PricingHandler {
	return &PricingHandler{
		pricingUC: params.PricingUC,
		auditUC:   params.AuditUC,
		logger:    params.Logger,
	}
}

// SimulateRequest represents the price calculator input
type SimulateRequest struct {
	BasePrice    *float64 `json:"base_price" validate:"required,gte=0"`
	Category     string   `json:"category" validate:"required,category"`
	DaysToExpiry *int     `json:"days_to_expiry"`
}

// ApplyRulesRequest selects the products rules are applied to
type ApplyRulesRequest struct {
	Category string `json:"category" validate:"omitempty,category"`
}

// BulkAdjustRequest represents a bulk percentage adjustment
type BulkAdjustRequest struct {
	Category  string  `json:"category" validate:"omitempty,category"`
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction" validate:"required,direction"`
}

// Simulate handles the price calculator preview
func (h *PricingHandler) Simulate(c echo.Context) error {
	var req SimulateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid simulation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.pricingUC.Simulate(c.Request().Context(), usecase.SimulateInput{
		BasePrice:    *req.BasePrice,
		Category:     entity.Category(req.Category),
		DaysToExpiry: req.DaysToExpiry,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ApplyRules handles applying the active rules to the catalog
func (h *PricingHandler) ApplyRules(c echo.Context) error {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	var req ApplyRulesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid apply input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.pricingUC.ApplyRules(c.Request().Context(), usecase.ApplyRulesInput{
		Category: entity.Category(req.Category),
		ActorID:  operatorID,
	})
	if err != nil {
		return response.HandleBatchError(c, result, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// BulkAdjust handles a bulk percentage adjustment
func (h *PricingHandler) BulkAdjust(c echo.Context) error {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	var req BulkAdjustRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.pricingUC.BulkAdjust(c.Request().Context(), usecase.BulkAdjustInput{
		Category:  entity.Category(req.Category),
		Percent:   req.Percent,
		Direction: entity.AdjustDirection(req.Direction),
		ActorID:   operatorID,
	})
	if err != nil {
		return response.HandleBatchError(c, result, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ApplyPsychologicalPricing handles the .99 rounding pass
func (h *PricingHandler) ApplyPsychologicalPricing(c echo.Context) error {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	result, err := h.pricingUC.ApplyPsychologicalPricing(c.Request().Context(), operatorID)
	if err != nil {
		return response.HandleBatchError(c, result, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListRecentChanges handles the price change history, newest first
func (h *PricingHandler) ListRecentChanges(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	entries, err := h.auditUC.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}
