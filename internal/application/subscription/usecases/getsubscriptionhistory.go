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

type GetSubscriptionHistoryCommand struct {
	TenantID uint
}

type SubscriptionHistoryResult struct {
	Subscriptions []*dto.SubscriptionDTO       `json:"subscriptions"`
	Changes       []*dto.SubscriptionChangeDTO `json:"changes"`
}

// GetSubscriptionHistoryUseCase returns the tenant's subscription records
// most-recent-first together with the append-only plan change log.
type GetSubscriptionHistoryUseCase struct {
	tenantRepo tenant.Repository
	subRepo    subscription.SubscriptionRepository
	changeRepo subscription.SubscriptionChangeRepository
	logger     logger.Interface
}

func NewGetSubscriptionHistoryUseCase(
	tenantRepo tenant.Repository,
	subRepo subscription.SubscriptionRepository,
	changeRepo subscription.SubscriptionChangeRepository,
	logger logger.Interface,
) *GetSubscriptionHistoryUseCase {
	return &GetSubscriptionHistoryUseCase{
		tenantRepo: tenantRepo,
		subRepo:    subRepo,
		changeRepo: changeRepo,
		logger:     logger,
	}
}

func (uc *GetSubscriptionHistoryUseCase) Execute(ctx context.Context, cmd GetSubscriptionHistoryCommand) (*SubscriptionHistoryResult, error) {
	tn, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tn == nil {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}

	subs, err := uc.subRepo.GetByTenantID(ctx, tn.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	changes, err := uc.changeRepo.GetByTenantID(ctx, tn.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription changes: %w", err)
	}

	changeDTOs := make([]*dto.SubscriptionChangeDTO, 0, len(changes))
	for _, change := range changes {
		changeDTOs = append(changeDTOs, dto.ToSubscriptionChangeDTO(change))
	}

	return &SubscriptionHistoryResult{
		Subscriptions: dto.ToSubscriptionDTOList(subs),
		Changes:       changeDTOs,
	}, nil
}
