package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.toModel(sub)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "tenant_id", sub.TenantID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription created successfully",
		"subscription_id", model.ID,
		"tenant_id", sub.TenantID(),
		"plan_id", sub.PlanID(),
	)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SubscriptionModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := r.toModel(sub)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"ends_at":    model.EndsAt,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) GetActiveByTenantID(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SubscriptionModel
	err := tx.Where("tenant_id = ? AND status = ?", tenantID, vo.StatusActive.String()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active subscription", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByTenantID(ctx context.Context, tenantID uint) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to get subscriptions by tenant ID", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	entities := make([]*subscription.Subscription, 0, len(subModels))
	for i, model := range subModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription at index %d (ID %d): %w", i, model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("plan_id = ? AND status = ?", planID, vo.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count subscriptions by plan ID", "error", err, "plan_id", planID)
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

func (r *SubscriptionRepositoryImpl) CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.SubscriptionModel{}).
		Where("tenant_id = ? AND status = ?", tenantID, vo.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count active subscriptions", "error", err, "tenant_id", tenantID)
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}

func (r *SubscriptionRepositoryImpl) toEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	return subscription.ReconstructSubscription(
		model.ID,
		model.SID,
		model.TenantID,
		model.PlanID,
		vo.SubscriptionStatus(model.Status),
		model.Amount,
		model.StartsAt,
		model.EndsAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *SubscriptionRepositoryImpl) toModel(sub *subscription.Subscription) *models.SubscriptionModel {
	if sub == nil {
		return nil
	}

	return &models.SubscriptionModel{
		ID:        sub.ID(),
		SID:       sub.SID(),
		TenantID:  sub.TenantID(),
		PlanID:    sub.PlanID(),
		Status:    sub.Status().String(),
		Amount:    sub.Amount(),
		StartsAt:  sub.StartsAt(),
		EndsAt:    sub.EndsAt(),
		CreatedAt: sub.CreatedAt(),
		UpdatedAt: sub.UpdatedAt(),
	}
}
