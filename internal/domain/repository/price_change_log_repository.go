package repository

import (
	"context"

	"pricing/internal/domain/entity"
)

// PriceChangeLogRepository is the append-only audit store. There is deliberately no update
// or delete operation.
type PriceChangeLogRepository interface {
	// Append persists a new entry and fills in generated fields.
	Append(ctx context.Context, entry *entity.PriceChangeLogEntry) error

	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.PriceChangeLogEntry, error)
}
