package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sellora-inc/sellora/internal/shared/constants"
)

// AuditLogModel is the persistence model for the append-only audit trail.
type AuditLogModel struct {
	ID           uint   `gorm:"primarykey"`
	UserID       *uint  `gorm:"index"`
	Action       string `gorm:"not null;size:50;index"`
	ResourceType string `gorm:"not null;size:50;index:idx_audit_logs_resource"`
	ResourceID   uint   `gorm:"not null;index:idx_audit_logs_resource"`
	Metadata     datatypes.JSON
	PerformedAt  time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
