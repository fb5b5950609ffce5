package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type GetEntitlementsCommand struct {
	TenantID uint
}

// GetEntitlementsUseCase serves the tenant's entitlement view, read-through
// cached. Cache failures degrade to store reads and never fail the request.
type GetEntitlementsUseCase struct {
	tenantRepo tenant.Repository
	cache      EntitlementCache
	logger     logger.Interface
}

func NewGetEntitlementsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetEntitlementsUseCase {
	return &GetEntitlementsUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// SetCache sets the optional entitlement cache.
func (uc *GetEntitlementsUseCase) SetCache(cache EntitlementCache) {
	uc.cache = cache
}

func (uc *GetEntitlementsUseCase) Execute(ctx context.Context, cmd GetEntitlementsCommand) (*dto.EntitlementsDTO, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, cmd.TenantID)
		if err != nil {
			uc.logger.Warnw("entitlement cache read failed", "error", err, "tenant_id", cmd.TenantID)
		} else if cached != nil {
			return cached, nil
		}
	}

	tn, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tn == nil {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}
	if tn.IsArchived() {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}

	entitlements := dto.ToEntitlementsDTO(tn)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cmd.TenantID, entitlements); err != nil {
			uc.logger.Warnw("entitlement cache write failed", "error", err, "tenant_id", cmd.TenantID)
		}
	}

	return entitlements, nil
}
