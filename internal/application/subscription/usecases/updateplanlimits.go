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

type UpdatePlanLimitsCommand struct {
	PlanID  uint
	Limits  map[string]int64
	ActorID *uint
}

type UpdatePlanLimitsResult struct {
	TenantsUpdated int `json:"tenants_updated"`
}

// UpdatePlanLimitsUseCase edits a plan's usage limits and cascades the edit
// to every subscribed tenant, mirroring UpdatePlanFeaturesUseCase.
type UpdatePlanLimitsUseCase struct {
	planRepo    subscription.PlanRepository
	tenantRepo  tenant.Repository
	auditor     audit.Recorder
	tx          Transactor
	invalidator EntitlementInvalidator
	logger      logger.Interface
}

func NewUpdatePlanLimitsUseCase(
	planRepo subscription.PlanRepository,
	tenantRepo tenant.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *UpdatePlanLimitsUseCase {
	return &UpdatePlanLimitsUseCase{
		planRepo:   planRepo,
		tenantRepo: tenantRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

// SetInvalidator sets the optional entitlement cache invalidator.
func (uc *UpdatePlanLimitsUseCase) SetInvalidator(invalidator EntitlementInvalidator) {
	uc.invalidator = invalidator
}

func (uc *UpdatePlanLimitsUseCase) Execute(ctx context.Context, cmd UpdatePlanLimitsCommand) (*UpdatePlanLimitsResult, error) {
	if cmd.Limits == nil {
		return nil, apperrors.NewValidationError("limits are required").
			WithField("limits", "is required")
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

		if err := plan.UpdateLimits(cmd.Limits); err != nil {
			return apperrors.NewValidationError(err.Error()).WithField("limits", err.Error())
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
		entry.AddMetadata("field", "limits")
		entry.AddMetadata("tenants_updated", len(updated))
		if err := uc.auditor.Record(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.invalidator != nil {
		for _, tenantID := range updated {
			if err := uc.invalidator.Invalidate(ctx, tenantID); err != nil {
				uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "tenant_id", tenantID)
			}
		}
	}

	uc.logger.Infow("plan limits cascaded",
		"plan_id", cmd.PlanID,
		"tenants_updated", len(updated),
	)

	return &UpdatePlanLimitsResult{TenantsUpdated: len(updated)}, nil
}
