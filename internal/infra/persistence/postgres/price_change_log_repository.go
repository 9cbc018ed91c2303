package postgres

import (
	"context"

	"pricing/internal/domain/entity"
	domainerrors "pricing/internal/domain/errors"
	"pricing/internal/domain/repository"
	"pricing/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// priceChangeLogRepository implements the repository.PriceChangeLogRepository interface.
// It only ever inserts and reads.
type priceChangeLogRepository struct {
	db *gorm.DB
}

// NewPriceChangeLogRepository is the constructor for priceChangeLogRepository.
func NewPriceChangeLogRepository(db *gorm.DB) repository.PriceChangeLogRepository {
	return &priceChangeLogRepository{
		db: db,
	}
}

// Append inserts a new audit entry.
func (repo *priceChangeLogRepository) Append(ctx context.Context, entry *entity.PriceChangeLogEntry) error {
	entryM := fromPriceChangeLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewRepositoryUnavailableError(err, "failed to append price change log")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListRecent returns the newest entries first.
func (repo *priceChangeLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.PriceChangeLogEntry, error) {
	var entryModels []*model.PriceChangeLogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, domainerrors.NewRepositoryUnavailableError(err, "failed to list price change logs")
	}

	entries := make([]*entity.PriceChangeLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toPriceChangeLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toPriceChangeLogDomain converts a GORM PriceChangeLogModel to a domain entry.
func toPriceChangeLogDomain(data *model.PriceChangeLogModel) *entity.PriceChangeLogEntry {
	if data == nil {
		return nil
	}

	return &entity.PriceChangeLogEntry{
		ID:        data.ID,
		ProductID: data.ProductID,
		RuleID:    data.RuleID,
		OldPrice:  data.OldPrice.InexactFloat64(),
		NewPrice:  data.NewPrice.InexactFloat64(),
		Reason:    data.Reason,
		ActorID:   data.ActorID,
		CreatedAt: data.CreatedAt,
	}
}

// fromPriceChangeLogDomain converts a domain entry to a GORM PriceChangeLogModel.
func fromPriceChangeLogDomain(data *entity.PriceChangeLogEntry) *model.PriceChangeLogModel {
	if data == nil {
		return nil
	}

	return &model.PriceChangeLogModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		RuleID:    data.RuleID,
		OldPrice:  decimal.NewFromFloat(data.OldPrice),
		NewPrice:  decimal.NewFromFloat(data.NewPrice),
		Reason:    data.Reason,
		ActorID:   data.ActorID,
		CreatedAt: data.CreatedAt,
	}
}
