package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellora-inc/sellora/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions. The composite
// index on (tenant_id, status) backs the active-subscription lookup that every
// plan change performs.
type SubscriptionModel struct {
	ID        uint            `gorm:"primarykey"`
	SID       string          `gorm:"uniqueIndex;not null;size:32"`
	TenantID  uint            `gorm:"not null;index:idx_subscriptions_tenant_status"`
	PlanID    uint            `gorm:"not null;index"`
	Status    string          `gorm:"not null;size:20;index:idx_subscriptions_tenant_status"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StartsAt  time.Time       `gorm:"not null"`
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
