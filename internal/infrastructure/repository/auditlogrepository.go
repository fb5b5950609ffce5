package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

// AuditLogRepositoryImpl is the write-only audit sink. Record honors the
// ambient transaction so audit rows commit atomically with the state change
// they describe.
type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditLogRepository(db *gorm.DB, logger logger.Interface) audit.Recorder {
	return &AuditLogRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AuditLogRepositoryImpl) Record(ctx context.Context, entry *audit.Entry) error {
	metadataJSON, err := json.Marshal(entry.Metadata())
	if err != nil {
		return fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	model := &models.AuditLogModel{
		UserID:       entry.UserID(),
		Action:       entry.Action(),
		ResourceType: entry.ResourceType(),
		ResourceID:   entry.ResourceID(),
		Metadata:     metadataJSON,
		PerformedAt:  entry.PerformedAt(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to record audit entry", "error", err, "action", entry.Action())
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}
