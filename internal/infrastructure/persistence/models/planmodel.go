package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/shared/constants"
)

// PlanModel is the persistence model for subscription plans.
// This is the anti-corruption layer between domain and database.
type PlanModel struct {
	ID           uint            `gorm:"primarykey"`
	SID          string          `gorm:"uniqueIndex;not null;size:32"`
	Name         string          `gorm:"uniqueIndex;not null;size:100"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BillingCycle string          `gorm:"not null;size:20"`
	Features     datatypes.JSON
	Limits       datatypes.JSON
	TrialDays    int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true;index"`
	SortOrder    int  `gorm:"default:0"`
	Version      int  `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.BillingCycle == "" {
		p.BillingCycle = "monthly"
	}
	return nil
}
