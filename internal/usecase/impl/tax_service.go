package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	deliverycontext "pricing/internal/delivery/context"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/pricing"
	"pricing/internal/domain/repository"
	"pricing/internal/usecase"
)

type taxService struct {
	store  repository.TaxConfigStore
	logger *slog.Logger
}

// NewTaxService creates a new tax service instance
func NewTaxService(store repository.TaxConfigStore, logger *slog.Logger) usecase.TaxUsecase {
	return &taxService{
		store:  store,
		logger: logger,
	}
}

// GetConfiguration returns the stored tax configuration
func (s *taxService) GetConfiguration(ctx context.Context) (*entity.TaxConfiguration, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax configuration: %w", asRepositoryError(err, "tax configuration unavailable"))
	}

	return cfg, nil
}

// SaveConfiguration validates rates and replaces the stored configuration
func (s *taxService) SaveConfiguration(ctx context.Context, cfg *entity.TaxConfiguration) error {
	if cfg == nil {
		return domainerrors.ErrValidationFailed.WithDetails("tax configuration is required")
	}
	if !validRate(cfg.VATRatePercent) {
		return domainerrors.ErrValidationFailed.WithDetails("vat rate must be between 0 and 100")
	}
	if !validRate(cfg.WithholdingTaxRatePercent) {
		return domainerrors.ErrValidationFailed.WithDetails("withholding tax rate must be between 0 and 100")
	}

	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save tax configuration: %w", asRepositoryError(err, "tax configuration unavailable"))
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Saved tax configuration",
		slog.Float64("vat_rate_percent", cfg.VATRatePercent),
		slog.Bool("vat_inclusive", cfg.VATInclusive),
		slog.Bool("senior_pwd_discount_enabled", cfg.SeniorPWDDiscountEnabled),
	)

	return nil
}

// Overlay computes customer-facing prices with the current configuration
func (s *taxService) Overlay(ctx context.Context, finalPrice float64) (*pricing.OverlayResult, error) {
	if math.IsNaN(finalPrice) || math.IsInf(finalPrice, 0) || finalPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("final price must be a non-negative number")
	}

	cfg, err := s.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	result := pricing.Overlay(finalPrice, *cfg)

	return &result, nil
}

func validRate(rate float64) bool {
	return !math.IsNaN(rate) && rate >= 0 && rate <= 100
}
