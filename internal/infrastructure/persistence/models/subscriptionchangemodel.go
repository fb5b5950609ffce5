package models

import (
	"time"

	"github.com/sellora-inc/sellora/internal/shared/constants"
)

// SubscriptionChangeModel is the persistence model for the append-only plan
// change history. Rows are inserted and read, never updated or deleted.
type SubscriptionChangeModel struct {
	ID        uint  `gorm:"primarykey"`
	TenantID  uint  `gorm:"not null;index"`
	OldPlanID *uint `gorm:""`
	NewPlanID uint  `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionChangeModel) TableName() string {
	return constants.TableSubscriptionChanges
}
