package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricing/config"
	deliverycontext "pricing/internal/delivery/context"
	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecentLogLimit = 50
	maxRecentLogLimit     = 500
)

type auditService struct {
	logRepo      repository.PriceChangeLogRepository
	defaultLimit int
	now          func() time.Time
	logger       *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	LogRepo repository.PriceChangeLogRepository
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAuditService creates a new audit service instance
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	limit := defaultRecentLogLimit
	if params.Config != nil && params.Config.Pricing != nil && params.Config.Pricing.RecentLogLimit > 0 {
		limit = min(params.Config.Pricing.RecentLogLimit, maxRecentLogLimit)
	}

	return &auditService{
		logRepo:      params.LogRepo,
		defaultLimit: limit,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (s *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Record appends one price change entry.
// Without an explicit actor the authenticated operator on ctx is recorded.
func (s *auditService) Record(ctx context.Context, input usecase.RecordInput) (*entity.PriceChangeLogEntry, error) {
	if input.ActorID == uuid.Nil {
		if operatorID, ok := deliverycontext.GetOperatorIDFromContext(ctx); ok {
			input.ActorID = operatorID
		}
	}

	entry := &entity.PriceChangeLogEntry{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		RuleID:    input.RuleID,
		OldPrice:  input.OldPrice,
		NewPrice:  input.NewPrice,
		Reason:    input.Reason,
		ActorID:   input.ActorID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.log(ctx).Error("Failed to append price change log",
			slog.String("product_id", input.ProductID.String()),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("failed to record price change: %w", asRepositoryError(err, "price change log unavailable"))
	}

	return entry, nil
}

// ListRecent returns the newest entries, bounded by the configured default and a hard cap.
func (s *auditService) ListRecent(ctx context.Context, limit int) ([]*entity.PriceChangeLogEntry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, maxRecentLogLimit)

	entries, err := s.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list price change logs: %w", asRepositoryError(err, "price change log unavailable"))
	}

	return entries, nil
}

// asRepositoryError keeps application errors as they are and classifies anything else as a
// storage outage.
func asRepositoryError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewRepositoryUnavailableError(err, details)
}
