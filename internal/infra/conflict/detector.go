// Package conflict provides the strategies guarding product price writes.
package conflict

import (
	"context"
	"log/slog"

	"pricing/config"
	"pricing/internal/domain/constants"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/pricing"
	"pricing/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDetector accepts every write; the last writer wins.
type noopDetector struct{}

// NewNoopDetector returns the best-effort detector.
func NewNoopDetector() repository.ConflictDetector {
	return noopDetector{}
}

func (noopDetector) BeforeCommit(context.Context, *entity.Product) error {
	return nil
}

func (noopDetector) ExpectedPrice(*entity.Product) *float64 {
	return nil
}

// optimisticDetector re-reads the product before the write and also makes the write itself
// conditional on the price the decision was based on.
type optimisticDetector struct {
	productRepo repository.ProductRepository
}

// NewOptimisticDetector returns a detector that reports ErrConflict when the stored price
// moved since it was read.
func NewOptimisticDetector(productRepo repository.ProductRepository) repository.ConflictDetector {
	return &optimisticDetector{productRepo: productRepo}
}

func (d *optimisticDetector) BeforeCommit(ctx context.Context, product *entity.Product) error {
	current, err := d.productRepo.FindProductByID(ctx, product.ID)
	if err != nil {
		return err
	}

	if !pricing.SamePrice(current.SellingPrice, product.SellingPrice) {
		return domainerrors.ErrConflict.WithDetails("product " + product.ID.String() + " was repriced concurrently")
	}

	return nil
}

func (d *optimisticDetector) ExpectedPrice(product *entity.Product) *float64 {
	expected := product.SellingPrice

	return &expected
}

// Params holds dependencies for the detector provider, injected by Fx.
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ProductRepo repository.ProductRepository
}

// NewDetector selects the detector named by pricing.conflictDetection.
func NewDetector(params Params) (repository.ConflictDetector, error) {
	mode := constants.ConflictDetectionNone
	if params.Config.Pricing != nil && params.Config.Pricing.ConflictDetection != "" {
		mode = params.Config.Pricing.ConflictDetection
	}

	switch mode {
	case constants.ConflictDetectionNone:
		params.Logger.Info("Price writes use last-write-wins")

		return NewNoopDetector(), nil
	case constants.ConflictDetectionOptimistic:
		params.Logger.Info("Price writes use optimistic conflict detection")

		return NewOptimisticDetector(params.ProductRepo), nil
	default:
		return nil, errors.Errorf("unknown conflict detection mode: %s", mode)
	}
}
