package usecase

import (
	"context"

	"pricing/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordInput describes one committed price change.
type RecordInput struct {
	ProductID uuid.UUID
	OldPrice  float64
	NewPrice  float64
	RuleID    *uuid.UUID
	Reason    string
	ActorID   uuid.UUID
}

// AuditUsecase is the append-only price change log.
type AuditUsecase interface {
	// Record appends an entry. It never rolls back the price change it describes.
	Record(ctx context.Context, input RecordInput) (*entity.PriceChangeLogEntry, error)

	// ListRecent returns entries newest first. A non-positive limit uses the configured default.
	ListRecent(ctx context.Context, limit int) ([]*entity.PriceChangeLogEntry, error)
}
