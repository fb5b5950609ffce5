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

type RestoreTenantCommand struct {
	TenantID uint
	ActorID  *uint
}

// RestoreTenantUseCase reverses a suspension. Restoring an active tenant is a
// no-op; restoring an archived tenant is rejected (use unarchive).
type RestoreTenantUseCase struct {
	tenantRepo tenant.Repository
	auditor    audit.Recorder
	tx         Transactor
	cache      EntitlementCache
	logger     logger.Interface
}

func NewRestoreTenantUseCase(
	tenantRepo tenant.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *RestoreTenantUseCase {
	return &RestoreTenantUseCase{
		tenantRepo: tenantRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

// SetCache sets the optional entitlement cache.
func (uc *RestoreTenantUseCase) SetCache(cache EntitlementCache) {
	uc.cache = cache
}

func (uc *RestoreTenantUseCase) Execute(ctx context.Context, cmd RestoreTenantCommand) (*dto.TenantDTO, error) {
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

		wasSuspended := tn.IsSuspended()

		if err := tn.Restore(); err != nil {
			return apperrors.NewValidationError(err.Error()).
				WithField("tenant_id", err.Error())
		}
		if !wasSuspended {
			return nil
		}

		if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		entry, err := audit.NewEntry(cmd.ActorID, constants.AuditActionTenantRestored, "tenant", tn.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
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

	uc.logger.Infow("tenant restored", "tenant_id", tn.ID())

	return dto.ToTenantDTO(tn), nil
}
