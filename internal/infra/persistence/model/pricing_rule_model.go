package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRuleModel is the GORM-specific struct for the 'pricing_rules' table.
type PricingRuleModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string          `gorm:"type:varchar(255);not null"`
	RuleType          string          `gorm:"type:varchar(32);not null"`
	IsActive          bool            `gorm:"not null;default:true;index"`
	Priority          int             `gorm:"not null;default:0"`
	ConditionDays     *int            `gorm:"type:integer"`
	AdjustmentPercent decimal.Decimal `gorm:"type:numeric(9,4);not null"`
	AppliesToCategory *string         `gorm:"type:varchar(20)"`
	Description       string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingRuleModel) TableName() string {
	return "pricing_rules"
}
