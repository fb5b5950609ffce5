package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID    uint
	Name      *string
	Price     *decimal.Decimal
	TrialDays *int
	SortOrder *int
}

// UpdatePlanUseCase edits plan metadata: name, price, trial days, ordering.
// Feature and limit edits cascade to tenants and live in their own use cases.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	if cmd.Name != nil {
		if err := plan.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error()).WithField("name", err.Error())
		}
	}
	if cmd.Price != nil {
		if err := plan.UpdatePrice(*cmd.Price); err != nil {
			return nil, apperrors.NewValidationError(err.Error()).WithField("price", err.Error())
		}
	}
	if cmd.TrialDays != nil {
		if err := plan.UpdateTrialDays(*cmd.TrialDays); err != nil {
			return nil, apperrors.NewValidationError(err.Error()).WithField("trial_days", err.Error())
		}
	}
	if cmd.SortOrder != nil {
		plan.SetSortOrder(*cmd.SortOrder)
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", plan.ID())
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	return dto.ToPlanDTO(plan), nil
}
