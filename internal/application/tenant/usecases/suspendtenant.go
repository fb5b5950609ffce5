package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type SuspendTenantCommand struct {
	TenantID uint
	Reason   string
	ActorID  *uint
}

// SuspendTenantUseCase pauses a tenant's access. Plan, subscription, and
// entitlement settings are left intact so a later restore returns the tenant
// to exactly its previous shape. Suspending an already suspended tenant is a
// no-op.
type SuspendTenantUseCase struct {
	tenantRepo tenant.Repository
	auditor    audit.Recorder
	tx         Transactor
	cache      EntitlementCache
	logger     logger.Interface
}

func NewSuspendTenantUseCase(
	tenantRepo tenant.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *SuspendTenantUseCase {
	return &SuspendTenantUseCase{
		tenantRepo: tenantRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

// SetCache sets the optional entitlement cache.
func (uc *SuspendTenantUseCase) SetCache(cache EntitlementCache) {
	uc.cache = cache
}

func (uc *SuspendTenantUseCase) Execute(ctx context.Context, cmd SuspendTenantCommand) (*dto.TenantDTO, error) {
	var tn *tenant.Tenant

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tn, err = uc.tenantRepo.GetByIDForUpdate(txCtx, cmd.TenantID)
		if err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}
		if tn == nil {
			return apperrors.NewNotFoundError("tenant not found")
		}

		alreadySuspended := tn.IsSuspended()

		if err := tn.Suspend(); err != nil {
			return apperrors.NewValidationError(err.Error()).
				WithField("tenant_id", err.Error())
		}
		if alreadySuspended {
			return nil
		}

		if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		entry, err := audit.NewEntry(cmd.ActorID, constants.AuditActionTenantSuspended, "tenant", tn.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		if cmd.Reason != "" {
			entry.AddMetadata("reason", cmd.Reason)
		}
		if err := uc.auditor.Record(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, tn.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "tenant_id", tn.ID())
		}
	}

	uc.logger.Infow("tenant suspended", "tenant_id", tn.ID())

	return dto.ToTenantDTO(tn), nil
}
