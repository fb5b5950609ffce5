package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/biztime"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type CalculateProrationCommand struct {
	TenantID  uint
	NewPlanID uint
}

// CalculateProrationUseCase previews the billing adjustment of moving a
// tenant to another plan. Pure read: nothing is persisted and no subscription
// is changed.
type CalculateProrationUseCase struct {
	tenantRepo tenant.Repository
	planRepo   subscription.PlanRepository
	subRepo    subscription.SubscriptionRepository
	logger     logger.Interface
}

func NewCalculateProrationUseCase(
	tenantRepo tenant.Repository,
	planRepo subscription.PlanRepository,
	subRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *CalculateProrationUseCase {
	return &CalculateProrationUseCase{
		tenantRepo: tenantRepo,
		planRepo:   planRepo,
		subRepo:    subRepo,
		logger:     logger,
	}
}

func (uc *CalculateProrationUseCase) Execute(ctx context.Context, cmd CalculateProrationCommand) (*dto.ProrationDTO, error) {
	tn, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tn == nil {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}

	newPlan, err := uc.planRepo.GetByID(ctx, cmd.NewPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if newPlan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	current, err := uc.subRepo.GetActiveByTenantID(ctx, tn.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if current == nil {
		return nil, apperrors.NewValidationError("tenant has no active subscription").
			WithField("tenant_id", "proration requires an active subscription")
	}

	currentPlan, err := uc.planRepo.GetByID(ctx, current.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to get current plan: %w", err)
	}
	if currentPlan == nil {
		return nil, apperrors.NewInternalError("current plan missing for active subscription")
	}

	proration, err := subscription.CalculateProration(current, currentPlan, newPlan, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return dto.ToProrationDTO(proration), nil
}
