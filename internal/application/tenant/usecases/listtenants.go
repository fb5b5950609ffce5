package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

type ListTenantsCommand struct {
	Status   *string
	PlanID   *uint
	Page     int
	PageSize int
}

type ListTenantsResult struct {
	Tenants    []*dto.TenantDTO `json:"tenants"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ListTenantsUseCase lists tenants with optional status and plan filters.
// Archived tenants are excluded unless the archived status is requested.
type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, cmd ListTenantsCommand) (*ListTenantsResult, error) {
	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)

	tenants, total, err := uc.tenantRepo.List(ctx, tenant.Filter{
		Status:   cmd.Status,
		PlanID:   cmd.PlanID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return &ListTenantsResult{
		Tenants:    dto.ToTenantDTOList(tenants),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
