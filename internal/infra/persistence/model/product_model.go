package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Only the columns the pricing engine reads or writes are mapped.
type ProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string          `gorm:"type:varchar(255);not null"`
	SKU               string          `gorm:"column:sku;type:varchar(64);index"`
	Category          string          `gorm:"type:varchar(20);not null;index"`
	SellingPrice      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	CostPrice         decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	ExpirationDate    *time.Time
	LastAppliedRuleID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
