package handlers

import (
	"context"

	tenantdto "github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/application/tenant/usecases"
)

// Use case interfaces for TenantHandler

type createTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTenantCommand) (*tenantdto.TenantDTO, error)
}

type getTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetTenantCommand) (*tenantdto.TenantDTO, error)
}

type listTenantsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListTenantsCommand) (*usecases.ListTenantsResult, error)
}

type getEntitlementsUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetEntitlementsCommand) (*tenantdto.EntitlementsDTO, error)
}

type suspendTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.SuspendTenantCommand) (*tenantdto.TenantDTO, error)
}

type restoreTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.RestoreTenantCommand) (*tenantdto.TenantDTO, error)
}

type archiveTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.ArchiveTenantCommand) (*usecases.ArchiveTenantResult, error)
}

type unarchiveTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.UnarchiveTenantCommand) (*usecases.UnarchiveTenantResult, error)
}

type bulkArchiveTenantsUseCase interface {
	Execute(ctx context.Context, cmd usecases.BulkArchiveTenantsCommand) (*usecases.BulkArchiveTenantsResult, error)
}
