package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceChangeLogModel is the GORM-specific struct for the append-only 'price_change_logs' table.
// Rows are inserted once and never updated, so there is no UpdatedAt or DeletedAt.
type PriceChangeLogModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	RuleID    *uuid.UUID      `gorm:"type:uuid;index"`
	OldPrice  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	NewPrice  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Reason    string          `gorm:"type:text;not null"`
	ActorID   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PriceChangeLogModel) TableName() string {
	return "price_change_logs"
}
