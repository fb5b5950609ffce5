package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name         string
	Price        decimal.Decimal
	BillingCycle string
	Features     []string
	Limits       map[string]int64
	TrialDays    int
	SortOrder    int
}

// CreatePlanUseCase creates a new assignable plan.
type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	sids     SIDGenerator
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, sids SIDGenerator, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		sids:     sids,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	cycle, err := vo.ParseBillingCycle(cmd.BillingCycle)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error()).
			WithField("billing_cycle", "must be monthly, yearly, or lifetime")
	}

	sid, err := uc.sids.NewPlanSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan SID: %w", err)
	}

	plan, err := subscription.NewPlan(sid, cmd.Name, cmd.Price, cycle, cmd.TrialDays)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Features != nil {
		if err := plan.UpdateFeatures(cmd.Features); err != nil {
			return nil, apperrors.NewValidationError(err.Error()).WithField("features", err.Error())
		}
	}
	if cmd.Limits != nil {
		if err := plan.UpdateLimits(cmd.Limits); err != nil {
			return nil, apperrors.NewValidationError(err.Error()).WithField("limits", err.Error())
		}
	}
	plan.SetSortOrder(cmd.SortOrder)

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("plan with this name already exists")
		}
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "sid", plan.SID(), "name", plan.Name())

	return dto.ToPlanDTO(plan), nil
}
