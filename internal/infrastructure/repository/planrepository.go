package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
	"github.com/sellora-inc/sellora/internal/infrastructure/persistence/models"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan created successfully", "plan_id", model.ID, "name", plan.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PlanModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get plan by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"price":         model.Price,
			"billing_cycle": model.BillingCycle,
			"features":      model.Features,
			"limits":        model.Limits,
			"trial_days":    model.TrialDays,
			"is_active":     model.IsActive,
			"sort_order":    model.SortOrder,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	r.logger.Infow("plan updated successfully", "plan_id", plan.ID())
	return nil
}

func (r *PlanRepositoryImpl) GetAllActive(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&planModels).Error

	if err != nil {
		r.logger.Errorw("failed to get active plans", "error", err)
		return nil, fmt.Errorf("failed to get active plans: %w", err)
	}

	return r.toEntities(planModels)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter subscription.PlanFilter) ([]*subscription.Plan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if filter.BillingCycle != nil && *filter.BillingCycle != "" {
		query = query.Where("billing_cycle = ?", *filter.BillingCycle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
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
	query = query.Offset(offset).Limit(pageSize).Order("sort_order ASC, created_at DESC")

	var planModels []*models.PlanModel
	if err := query.Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	plans, err := r.toEntities(planModels)
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

func (r *PlanRepositoryImpl) toEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	cycle, err := vo.ParseBillingCycle(model.BillingCycle)
	if err != nil {
		return nil, fmt.Errorf("failed to parse billing cycle: %w", err)
	}

	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			r.logger.Errorw("failed to unmarshal features", "error", err, "plan_id", model.ID)
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	var limits map[string]int64
	if len(model.Limits) > 0 {
		if err := json.Unmarshal(model.Limits, &limits); err != nil {
			r.logger.Errorw("failed to unmarshal limits", "error", err, "plan_id", model.ID)
			return nil, fmt.Errorf("failed to unmarshal limits: %w", err)
		}
	}

	return subscription.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Price,
		cycle,
		features,
		limits,
		model.TrialDays,
		model.IsActive,
		model.SortOrder,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *PlanRepositoryImpl) toModel(plan *subscription.Plan) (*models.PlanModel, error) {
	if plan == nil {
		return nil, nil
	}

	featuresJSON, err := json.Marshal(plan.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	limitsJSON, err := json.Marshal(plan.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal limits: %w", err)
	}

	return &models.PlanModel{
		ID:           plan.ID(),
		SID:          plan.SID(),
		Name:         plan.Name(),
		Price:        plan.Price(),
		BillingCycle: plan.BillingCycle().String(),
		Features:     featuresJSON,
		Limits:       limitsJSON,
		TrialDays:    plan.TrialDays(),
		IsActive:     plan.IsActive(),
		SortOrder:    plan.SortOrder(),
		Version:      plan.Version(),
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}, nil
}

func (r *PlanRepositoryImpl) toEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for i, model := range planModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map plan at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
