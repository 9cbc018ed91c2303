// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"pricing/config"
	deliverycontext "pricing/internal/delivery/context"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/pricing"
	"pricing/internal/domain/repository"
	"pricing/internal/domain/service"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// pricingService implements the PricingUsecase interface.
// Products are processed one at a time; there is no transaction spanning products.
type pricingService struct {
	productRepo repository.ProductRepository
	ruleRepo    repository.PricingRuleRepository
	taxStore    repository.TaxConfigStore
	conflict    repository.ConflictDetector
	audit       usecase.AuditUsecase
	publisher   service.EventPublisher
	location    *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	ProductRepo      repository.ProductRepository
	RuleRepo         repository.PricingRuleRepository
	TaxStore         repository.TaxConfigStore
	ConflictDetector repository.ConflictDetector
	Audit            usecase.AuditUsecase
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(params PricingServiceParams) (usecase.PricingUsecase, error) {
	location := time.UTC
	if params.Config != nil && params.Config.Pricing != nil && params.Config.Pricing.Location != "" {
		loc, err := params.Config.Pricing.TimeLocation()
		if err != nil {
			return nil, err
		}
		location = loc
	}

	return &pricingService{
		productRepo: params.ProductRepo,
		ruleRepo:    params.RuleRepo,
		taxStore:    params.TaxStore,
		conflict:    params.ConflictDetector,
		audit:       params.Audit,
		publisher:   params.Publisher,
		location:    location,
		now:         time.Now,
		logger:      params.Logger,
	}, nil
}

func (s *pricingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// today is the start of the current calendar day in the configured location.
func (s *pricingService) today() time.Time {
	return pricing.StartOfDay(s.now(), s.location)
}

// Simulate compounds every matching active rule over the base price and applies the tax overlay.
func (s *pricingService) Simulate(ctx context.Context, input usecase.SimulateInput) (*pricing.SimulationResult, error) {
	if math.IsNaN(input.BasePrice) || math.IsInf(input.BasePrice, 0) || input.BasePrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("base price must be a non-negative number")
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
	}

	rules, err := s.activeRules(ctx)
	if err != nil {
		return nil, err
	}

	taxCfg, err := s.taxStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax configuration: %w", asRepositoryError(err, "tax configuration unavailable"))
	}

	result := pricing.Simulate(input.BasePrice, input.Category, input.DaysToExpiry, rules, *taxCfg)

	return &result, nil
}

// ApplyRules commits the first matching rule, by priority, to each selected product.
func (s *pricingService) ApplyRules(ctx context.Context, input usecase.ApplyRulesInput) (*entity.BatchResult, error) {
	if !input.Category.IsValidFilter() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
	}

	rules, err := s.activeRules(ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, domainerrors.ErrNoActiveRules
	}
	sorted := pricing.SortByPriority(rules)

	products, err := s.selectProducts(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	run := s.newBatchRun(service.OperationApplyRules, input.ActorID)
	defer s.publish(ctx, run)

	today := s.today()
	for _, product := range products {
		change, ok := pricing.PlanApply(sorted, product, today)
		if !ok {
			continue
		}

		if err := s.commit(ctx, run, change, change.RuleID(), true); err != nil {
			return run.result, err
		}
	}

	s.log(ctx).Info("Applied pricing rules",
		slog.String("category", input.Category.String()),
		slog.Int("candidates", len(products)),
		slog.Int("updated", run.result.UpdatedCount),
	)

	return run.result, nil
}

// BulkAdjust multiplies every selected price by 1 ± percent/100, rounded to cents.
// Every product is written and counted; only actual changes are logged.
func (s *pricingService) BulkAdjust(ctx context.Context, input usecase.BulkAdjustInput) (*entity.BatchResult, error) {
	multiplier, err := pricing.BulkMultiplier(input.Percent, input.Direction)
	if err != nil {
		return nil, err
	}
	if !input.Category.IsValidFilter() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
	}

	products, err := s.selectProducts(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	run := s.newBatchRun(service.OperationBulkAdjust, input.ActorID)
	defer s.publish(ctx, run)

	reason := pricing.BulkReason(input.Percent, input.Direction, input.Category)
	for _, product := range products {
		newPrice := pricing.BulkPrice(product.SellingPrice, multiplier)
		change := pricing.Change{
			Product:  product,
			OldPrice: product.SellingPrice,
			NewPrice: newPrice,
			Reason:   reason,
		}

		if err := s.commit(ctx, run, change, nil, !pricing.SamePrice(newPrice, product.SellingPrice)); err != nil {
			return run.result, err
		}
	}

	s.log(ctx).Info("Bulk adjusted prices",
		slog.String("category", input.Category.String()),
		slog.String("direction", input.Direction.String()),
		slog.Float64("percent", input.Percent),
		slog.Int("updated", run.result.UpdatedCount),
	)

	return run.result, nil
}

// ApplyPsychologicalPricing rewrites every price to floor(price) + 0.99.
// Prices already ending in .99 are left alone and not counted.
func (s *pricingService) ApplyPsychologicalPricing(ctx context.Context, actorID uuid.UUID) (*entity.BatchResult, error) {
	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", asRepositoryError(err, "product catalog unavailable"))
	}

	run := s.newBatchRun(service.OperationPsychologicalPricing, actorID)
	defer s.publish(ctx, run)

	for _, product := range products {
		newPrice := pricing.PsychologicalPrice(product.SellingPrice)
		if pricing.SamePrice(newPrice, product.SellingPrice) {
			continue
		}

		change := pricing.Change{
			Product:  product,
			OldPrice: product.SellingPrice,
			NewPrice: newPrice,
			Reason:   pricing.PsychologicalReason,
		}
		if err := s.commit(ctx, run, change, nil, true); err != nil {
			return run.result, err
		}
	}

	s.log(ctx).Info("Applied psychological pricing", slog.Int("updated", run.result.UpdatedCount))

	return run.result, nil
}

func (s *pricingService) activeRules(ctx context.Context) ([]*entity.PricingRule, error) {
	active := true
	rules, err := s.ruleRepo.ListRules(ctx, repository.RuleFilter{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", asRepositoryError(err, "pricing rules unavailable"))
	}

	return pricing.ActiveRules(rules), nil
}

// selectProducts loads the products of a category and reports an empty selection as ErrEmptyCategory.
func (s *pricingService) selectProducts(ctx context.Context, category entity.Category) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", asRepositoryError(err, "product catalog unavailable"))
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrEmptyCategory.WithDetails("category: " + displayCategory(category))
	}

	return products, nil
}

// batchRun accumulates the outcome of one catalog-wide operation.
type batchRun struct {
	operation string
	actorID   uuid.UUID
	result    *entity.BatchResult
	changes   []service.PriceChangeEntry
}

func (s *pricingService) newBatchRun(operation string, actorID uuid.UUID) *batchRun {
	return &batchRun{
		operation: operation,
		actorID:   actorID,
		result: &entity.BatchResult{
			Logs: make([]*entity.PriceChangeLogEntry, 0),
		},
		changes: make([]service.PriceChangeEntry, 0),
	}
}

// commit performs the read-modify-write for one product: conflict check, price write, then
// the audit entry when record is set. A failing audit write does not undo the price write.
func (s *pricingService) commit(ctx context.Context, run *batchRun, change pricing.Change, appliedRuleID *uuid.UUID, record bool) error {
	product := change.Product

	if err := s.conflict.BeforeCommit(ctx, product); err != nil {
		return fmt.Errorf("failed conflict check for product %s: %w", product.ID, asRepositoryError(err, "product catalog unavailable"))
	}

	update := repository.PriceUpdate{
		ProductID:     product.ID,
		SellingPrice:  change.NewPrice,
		ExpectedPrice: s.conflict.ExpectedPrice(product),
		AppliedRuleID: appliedRuleID,
	}
	if err := s.productRepo.UpdatePrice(ctx, update); err != nil {
		return fmt.Errorf("failed to update price of product %s: %w", product.ID, asRepositoryError(err, "product catalog unavailable"))
	}
	run.result.UpdatedCount++

	if !record {
		return nil
	}

	entry := service.PriceChangeEntry{
		ProductID: product.ID.String(),
		OldPrice:  change.OldPrice,
		NewPrice:  change.NewPrice,
		Reason:    change.Reason,
	}
	if ruleID := change.RuleID(); ruleID != nil {
		entry.RuleID = ruleID.String()
	}
	run.changes = append(run.changes, entry)

	logEntry, err := s.audit.Record(ctx, usecase.RecordInput{
		ProductID: product.ID,
		OldPrice:  change.OldPrice,
		NewPrice:  change.NewPrice,
		RuleID:    change.RuleID(),
		Reason:    change.Reason,
		ActorID:   run.actorID,
	})
	if err != nil {
		return fmt.Errorf("failed to log price change of product %s: %w", product.ID, err)
	}
	run.result.Logs = append(run.result.Logs, logEntry)

	return nil
}

// publish announces a batch that committed at least one write. Delivery failures are logged
// and never fail the batch.
func (s *pricingService) publish(ctx context.Context, run *batchRun) {
	if s.publisher == nil || run.result.UpdatedCount == 0 {
		return
	}

	event := &service.PriceChangeEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Operation:    run.operation,
		ActorID:      run.actorID.String(),
		UpdatedCount: run.result.UpdatedCount,
		Changes:      run.changes,
		OccurredAt:   s.now().UTC(),
	}

	if err := s.publisher.PublishPriceChangeEvent(context.WithoutCancel(ctx), event); err != nil {
		s.log(ctx).Warn("Failed to publish price change event",
			slog.String("operation", run.operation),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func displayCategory(category entity.Category) string {
	if category.IsAll() {
		return entity.CategoryAll.String()
	}

	return category.String()
}
