package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type SetPlanStatusCommand struct {
	PlanID   uint
	IsActive bool
}

// SetPlanStatusUseCase activates or deactivates a plan. Deactivation only
// stops new assignments; tenants already subscribed keep their entitlements.
type SetPlanStatusUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewSetPlanStatusUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *SetPlanStatusUseCase {
	return &SetPlanStatusUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *SetPlanStatusUseCase) Execute(ctx context.Context, cmd SetPlanStatusCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	if cmd.IsActive {
		plan.Activate()
	} else {
		plan.Deactivate()
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan status", "error", err, "plan_id", plan.ID())
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan status updated", "plan_id", plan.ID(), "is_active", cmd.IsActive)

	return dto.ToPlanDTO(plan), nil
}
