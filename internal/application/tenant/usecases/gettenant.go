package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type GetTenantCommand struct {
	TenantID uint
}

// GetTenantUseCase fetches a single tenant by ID, archived ones included.
type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, cmd GetTenantCommand) (*dto.TenantDTO, error) {
	tn, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tn == nil {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}

	return dto.ToTenantDTO(tn), nil
}
