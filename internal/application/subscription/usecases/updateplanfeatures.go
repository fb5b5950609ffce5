package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type UpdatePlanFeaturesCommand struct {
	PlanID   uint
	Features []string
	ActorID  *uint
}

type UpdatePlanFeaturesResult struct {
	TenantsUpdated int `json:"tenants_updated"`
}

// UpdatePlanFeaturesUseCase edits a plan's feature flags and cascades the
// edit to every tenant subscribed to the plan. The plan update and the full
// cascade commit as one transaction: a plan edit is either visible to all its
// tenants or to none. Tenant-local settings keys are never touched.
type UpdatePlanFeaturesUseCase struct {
	planRepo    subscription.PlanRepository
	tenantRepo  tenant.Repository
	auditor     audit.Recorder
	tx          Transactor
	invalidator EntitlementInvalidator
	logger      logger.Interface
}

func NewUpdatePlanFeaturesUseCase(
	planRepo subscription.PlanRepository,
	tenantRepo tenant.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *UpdatePlanFeaturesUseCase {
	return &UpdatePlanFeaturesUseCase{
		planRepo:   planRepo,
		tenantRepo: tenantRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

// SetInvalidator sets the optional entitlement cache invalidator.
func (uc *UpdatePlanFeaturesUseCase) SetInvalidator(invalidator EntitlementInvalidator) {
	uc.invalidator = invalidator
}

func (uc *UpdatePlanFeaturesUseCase) Execute(ctx context.Context, cmd UpdatePlanFeaturesCommand) (*UpdatePlanFeaturesResult, error) {
	if cmd.Features == nil {
		return nil, apperrors.NewValidationError("features are required").
			WithField("features", "is required")
	}

	var updated []uint

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		plan, err := uc.planRepo.GetByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return apperrors.NewNotFoundError("plan not found")
		}

		if err := plan.UpdateFeatures(cmd.Features); err != nil {
			return apperrors.NewValidationError(err.Error()).WithField("features", err.Error())
		}
		if err := uc.planRepo.Update(txCtx, plan); err != nil {
			return fmt.Errorf("failed to update plan: %w", err)
		}

		tenants, err := uc.tenantRepo.GetByPlanID(txCtx, plan.ID())
		if err != nil {
			return fmt.Errorf("failed to load subscribed tenants: %w", err)
		}

		for _, tn := range tenants {
			tn.SyncEntitlements(plan.Features(), plan.Limits())
			if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
				return fmt.Errorf("failed to sync tenant %d: %w", tn.ID(), err)
			}
			updated = append(updated, tn.ID())
		}

		entry, err := audit.NewEntry(cmd.ActorID, constants.AuditActionPlanUpdated, "plan", plan.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		entry.AddMetadata("field", "features")
		entry.AddMetadata("tenants_updated", len(updated))
		if err := uc.auditor.Record(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateAll(ctx, updated)

	uc.logger.Infow("plan features cascaded",
		"plan_id", cmd.PlanID,
		"tenants_updated", len(updated),
	)

	return &UpdatePlanFeaturesResult{TenantsUpdated: len(updated)}, nil
}

func (uc *UpdatePlanFeaturesUseCase) invalidateAll(ctx context.Context, tenantIDs []uint) {
	if uc.invalidator == nil {
		return
	}
	for _, tenantID := range tenantIDs {
		if err := uc.invalidator.Invalidate(ctx, tenantID); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "tenant_id", tenantID)
		}
	}
}
