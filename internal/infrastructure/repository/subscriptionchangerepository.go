package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

// SubscriptionChangeRepositoryImpl persists the append-only plan change
// history. There is deliberately no update or delete path.
type SubscriptionChangeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionChangeRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionChangeRepository {
	return &SubscriptionChangeRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionChangeRepositoryImpl) Create(ctx context.Context, change *subscription.SubscriptionChange) error {
	model := &models.SubscriptionChangeModel{
		TenantID:  change.TenantID(),
		OldPlanID: change.OldPlanID(),
		NewPlanID: change.NewPlanID(),
		CreatedAt: change.CreatedAt(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to append subscription change", "error", err, "tenant_id", change.TenantID())
		return fmt.Errorf("failed to append subscription change: %w", err)
	}

	return nil
}

func (r *SubscriptionChangeRepositoryImpl) GetByTenantID(ctx context.Context, tenantID uint) ([]*subscription.SubscriptionChange, error) {
	var changeModels []*models.SubscriptionChangeModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&changeModels).Error
	if err != nil {
		r.logger.Errorw("failed to get subscription changes", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to get subscription changes: %w", err)
	}

	changes := make([]*subscription.SubscriptionChange, 0, len(changeModels))
	for i, model := range changeModels {
		change, err := subscription.ReconstructSubscriptionChange(
			model.ID,
			model.TenantID,
			model.OldPlanID,
			model.NewPlanID,
			model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to map change at index %d (ID %d): %w", i, model.ID, err)
		}
		changes = append(changes, change)
	}
	return changes, nil
}
