package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sellora-inc/sellora/internal/shared/constants"
)

// TenantModel is the persistence model for tenants. DeletedAt is managed by
// the domain's archive workflow, not by GORM soft deletes: archived rows must
// stay reachable through ordinary queries.
type TenantModel struct {
	ID                 uint   `gorm:"primarykey"`
	SID                string `gorm:"uniqueIndex;not null;size:32"`
	Name               string `gorm:"not null;size:150"`
	Domain             string `gorm:"uniqueIndex;not null;size:255"`
	Status             string `gorm:"not null;size:20;default:active;index"`
	PlanID             *uint  `gorm:"index"`
	Settings           datatypes.JSON
	SubscriptionStatus string `gorm:"size:20"`
	Version            int    `gorm:"not null;default:1"`
	DeletedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return constants.TableTenants
}
