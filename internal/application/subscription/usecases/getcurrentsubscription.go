package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type GetCurrentSubscriptionCommand struct {
	TenantID uint
}

type CurrentSubscriptionResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Plan         *dto.PlanDTO         `json:"plan,omitempty"`
}

// GetCurrentSubscriptionUseCase returns the tenant's active subscription and
// its plan. The subscription field is nil for unsubscribed tenants.
type GetCurrentSubscriptionUseCase struct {
	tenantRepo tenant.Repository
	planRepo   subscription.PlanRepository
	subRepo    subscription.SubscriptionRepository
	logger     logger.Interface
}

func NewGetCurrentSubscriptionUseCase(
	tenantRepo tenant.Repository,
	planRepo subscription.PlanRepository,
	subRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *GetCurrentSubscriptionUseCase {
	return &GetCurrentSubscriptionUseCase{
		tenantRepo: tenantRepo,
		planRepo:   planRepo,
		subRepo:    subRepo,
		logger:     logger,
	}
}

func (uc *GetCurrentSubscriptionUseCase) Execute(ctx context.Context, cmd GetCurrentSubscriptionCommand) (*CurrentSubscriptionResult, error) {
	tn, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tn == nil {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}

	current, err := uc.subRepo.GetActiveByTenantID(ctx, tn.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if current == nil {
		return &CurrentSubscriptionResult{}, nil
	}

	plan, err := uc.planRepo.GetByID(ctx, current.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &CurrentSubscriptionResult{
		Subscription: dto.ToSubscriptionDTO(current),
		Plan:         dto.ToPlanDTO(plan),
	}, nil
}
