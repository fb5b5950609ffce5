package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/user"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) GetByTenantID(ctx context.Context, tenantID uint) ([]*user.User, error) {
	var userModels []*models.UserModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to get users by tenant ID", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i, model := range userModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user at index %d (ID %d): %w", i, model.ID, err)
		}
		users = append(users, entity)
	}
	return users, nil
}

// DeactivateByTenantID flips is_active off for every user of the tenant in one
// statement. Honors the ambient transaction.
func (r *UserRepositoryImpl) DeactivateByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to deactivate users", "error", result.Error, "tenant_id", tenantID)
		return 0, fmt.Errorf("failed to deactivate users: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// ActivateByTenantID reverses DeactivateByTenantID.
func (r *UserRepositoryImpl) ActivateByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, false).
		Updates(map[string]interface{}{
			"is_active":  true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to activate users", "error", result.Error, "tenant_id", tenantID)
		return 0, fmt.Errorf("failed to activate users: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *UserRepositoryImpl) CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count active users", "error", err, "tenant_id", tenantID)
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

func (r *UserRepositoryImpl) toEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.TenantID,
		model.Email,
		model.Name,
		model.Role,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
