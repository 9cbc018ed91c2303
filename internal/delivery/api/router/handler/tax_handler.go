package handler

import (
	"net/http"

	"pricing/internal/delivery/api/response"
	"pricing/internal/domain/entity"
	"pricing/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TaxHandler exposes the tax configuration and the overlay calculator
type TaxHandler struct {
	taxUC usecase.TaxUsecase
}

// NewTaxHandler is the constructor for TaxHandler
func NewTaxHandler(taxUC usecase.TaxUsecase) *TaxHandler {
	return &TaxHandler{taxUC: taxUC}
}

// TaxConfigRequest represents the tax configuration to save
type TaxConfigRequest struct {
	VATRatePercent            *float64 `json:"vat_rate_percent" validate:"required,gte=0,lte=100"`
	VATInclusive              bool     `json:"vat_inclusive"`
	SeniorPWDDiscountEnabled  bool     `json:"senior_pwd_discount_enabled"`
	WithholdingTaxEnabled     bool     `json:"withholding_tax_enabled"`
	WithholdingTaxRatePercent float64  `json:"withholding_tax_rate_percent" validate:"gte=0,lte=100"`
}

// OverlayRequest represents the overlay calculator input
type OverlayRequest struct {
	FinalPrice *float64 `json:"final_price" validate:"required,gte=0"`
}

// GetConfiguration handles reading the tax configuration
func (h *TaxHandler) GetConfiguration(c echo.Context) error {
	cfg, err := h.taxUC.GetConfiguration(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// SaveConfiguration handles replacing the tax configuration
func (h *TaxHandler) SaveConfiguration(c echo.Context) error {
	var req TaxConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tax configuration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cfg := &entity.TaxConfiguration{
		VATRatePercent:            *req.VATRatePercent,
		VATInclusive:              req.VATInclusive,
		SeniorPWDDiscountEnabled:  req.SeniorPWDDiscountEnabled,
		WithholdingTaxEnabled:     req.WithholdingTaxEnabled,
		WithholdingTaxRatePercent: req.WithholdingTaxRatePercent,
	}
	if err := h.taxUC.SaveConfiguration(c.Request().Context(), cfg); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// Overlay handles computing VAT-inclusive and senior/PWD prices
func (h *TaxHandler) Overlay(c echo.Context) error {
	var req OverlayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid overlay input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.taxUC.Overlay(c.Request().Context(), *req.FinalPrice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
