package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, tn *tenant.Tenant) error {
	model, err := r.toModel(tn)
	if err != nil {
		r.logger.Errorw("failed to convert tenant to model", "error", err)
		return fmt.Errorf("failed to convert tenant to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant", "error", err, "domain", tn.Domain())
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := tn.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("tenant created successfully", "tenant_id", model.ID, "domain", tn.Domain())
	return nil
}

func (r *TenantRepositoryImpl) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TenantModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by ID", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.toEntity(&model)
}

// GetByIDForUpdate loads the tenant row with SELECT ... FOR UPDATE. It relies
// on the ambient transaction; concurrent plan changes for the same tenant
// serialize on this lock.
func (r *TenantRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*tenant.Tenant, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TenantModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to lock tenant row", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to lock tenant row: %w", err)
	}

	return r.toEntity(&model)
}

func (r *TenantRepositoryImpl) GetBySID(ctx context.Context, sid string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get tenant by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *TenantRepositoryImpl) GetByDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("domain = ?", domain).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by domain", "error", err, "domain", domain)
		return nil, fmt.Errorf("failed to get tenant by domain: %w", err)
	}

	return r.toEntity(&model)
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, tn *tenant.Tenant) error {
	model, err := r.toModel(tn)
	if err != nil {
		r.logger.Errorw("failed to convert tenant to model", "error", err)
		return fmt.Errorf("failed to convert tenant to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TenantModel{}).
		Where("id = ?", tn.ID()).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"status":              model.Status,
			"plan_id":             model.PlanID,
			"settings":            model.Settings,
			"subscription_status": model.SubscriptionStatus,
			"deleted_at":          model.DeletedAt,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "error", result.Error, "tenant_id", tn.ID())
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}

	r.logger.Infow("tenant updated successfully", "tenant_id", tn.ID())
	return nil
}

// GetByPlanID returns every tenant on the plan, archived ones included, so
// cascading plan edits reach all dependents.
func (r *TenantRepositoryImpl) GetByPlanID(ctx context.Context, planID uint) ([]*tenant.Tenant, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var tenantModels []*models.TenantModel
	if err := tx.Where("plan_id = ?", planID).Find(&tenantModels).Error; err != nil {
		r.logger.Errorw("failed to get tenants by plan ID", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get tenants by plan ID: %w", err)
	}

	return r.toEntities(tenantModels)
}

func (r *TenantRepositoryImpl) ExistsByDomain(ctx context.Context, domain string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TenantModel{}).
		Where("domain = ?", domain).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("failed to check tenant domain existence", "error", err, "domain", domain)
		return false, fmt.Errorf("failed to check tenant domain existence: %w", err)
	}

	return count > 0, nil
}

func (r *TenantRepositoryImpl) List(ctx context.Context, filter tenant.Filter) ([]*tenant.Tenant, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TenantModel{})

	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	} else {
		query = query.Scopes(db.NotArchived())
	}

	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	offset := (page - 1) * pageSize
	query = query.Offset(offset).Limit(pageSize).Order("created_at DESC")

	var tenantModels []*models.TenantModel
	if err := query.Find(&tenantModels).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	tenants, err := r.toEntities(tenantModels)
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

func (r *TenantRepositoryImpl) toEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}

	settings := tenant.NewSettings()
	if len(model.Settings) > 0 {
		if err := json.Unmarshal(model.Settings, &settings); err != nil {
			r.logger.Errorw("failed to unmarshal settings", "error", err, "tenant_id", model.ID)
			return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}

	return tenant.ReconstructTenant(
		model.ID,
		model.SID,
		model.Name,
		model.Domain,
		tenant.Status(model.Status),
		model.PlanID,
		settings,
		model.SubscriptionStatus,
		model.DeletedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *TenantRepositoryImpl) toModel(tn *tenant.Tenant) (*models.TenantModel, error) {
	if tn == nil {
		return nil, nil
	}

	settingsJSON, err := json.Marshal(tn.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	return &models.TenantModel{
		ID:                 tn.ID(),
		SID:                tn.SID(),
		Name:               tn.Name(),
		Domain:             tn.Domain(),
		Status:             tn.Status().String(),
		PlanID:             tn.PlanID(),
		Settings:           settingsJSON,
		SubscriptionStatus: tn.SubscriptionStatus(),
		DeletedAt:          tn.DeletedAt(),
		Version:            tn.Version(),
		CreatedAt:          tn.CreatedAt(),
		UpdatedAt:          tn.UpdatedAt(),
	}, nil
}

func (r *TenantRepositoryImpl) toEntities(tenantModels []*models.TenantModel) ([]*tenant.Tenant, error) {
	entities := make([]*tenant.Tenant, 0, len(tenantModels))
	for i, model := range tenantModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map tenant at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
