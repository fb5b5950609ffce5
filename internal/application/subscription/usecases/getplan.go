package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type GetPlanCommand struct {
	PlanID uint
}

// GetPlanUseCase fetches a single plan by ID.
type GetPlanUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.SubscriptionRepository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo subscription.PlanRepository, subRepo subscription.SubscriptionRepository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		subRepo:  subRepo,
		logger:   logger,
	}
}

type GetPlanResult struct {
	Plan                *dto.PlanDTO `json:"plan"`
	ActiveSubscriptions int64        `json:"active_subscriptions"`
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*GetPlanResult, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	count, err := uc.subRepo.CountByPlanID(ctx, plan.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return &GetPlanResult{
		Plan:                dto.ToPlanDTO(plan),
		ActiveSubscriptions: count,
	}, nil
}
