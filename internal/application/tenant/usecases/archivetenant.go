package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/domain/user"
	"github.com/sellora-inc/sellora/internal/shared/biztime"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type ArchiveTenantCommand struct {
	TenantID  uint
	ActorID   *uint
	ActorRole string
}

type ArchiveTenantResult struct {
	Tenant           *dto.TenantDTO `json:"tenant"`
	UsersDeactivated int64          `json:"users_deactivated"`
}

// ArchiveTenantUseCase soft-deletes a tenant: the row gains a deleted_at
// timestamp, the active subscription is cancelled, and every user of the
// tenant is deactivated. Nothing is physically deleted. Only super admins may
// archive; archiving an already archived tenant is a no-op.
type ArchiveTenantUseCase struct {
	tenantRepo tenant.Repository
	subRepo    subscription.SubscriptionRepository
	userRepo   user.Repository
	auditor    audit.Recorder
	tx         Transactor
	cache      EntitlementCache
	logger     logger.Interface
}

func NewArchiveTenantUseCase(
	tenantRepo tenant.Repository,
	subRepo subscription.SubscriptionRepository,
	userRepo user.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *ArchiveTenantUseCase {
	return &ArchiveTenantUseCase{
		tenantRepo: tenantRepo,
		subRepo:    subRepo,
		userRepo:   userRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

// SetCache sets the optional entitlement cache.
func (uc *ArchiveTenantUseCase) SetCache(cache EntitlementCache) {
	uc.cache = cache
}

func (uc *ArchiveTenantUseCase) Execute(ctx context.Context, cmd ArchiveTenantCommand) (*ArchiveTenantResult, error) {
	if cmd.ActorRole != constants.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("only super admins can archive tenants")
	}

	var (
		tn          *tenant.Tenant
		deactivated int64
	)

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tn, err = uc.tenantRepo.GetByIDForUpdate(txCtx, cmd.TenantID)
		if err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}
		if tn == nil {
			return apperrors.NewNotFoundError("tenant not found")
		}
		if tn.IsArchived() {
			return nil
		}

		now := biztime.NowUTC()

		current, err := uc.subRepo.GetActiveByTenantID(txCtx, tn.ID())
		if err != nil {
			return fmt.Errorf("failed to get active subscription: %w", err)
		}
		if current != nil {
			if err := current.Cancel(now); err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}
			if err := uc.subRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}
		}

		if err := tn.Archive(now); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		deactivated, err = uc.userRepo.DeactivateByTenantID(txCtx, tn.ID())
		if err != nil {
			return fmt.Errorf("failed to deactivate users: %w", err)
		}

		entry, err := audit.NewEntry(cmd.ActorID, constants.AuditActionTenantDeleted, "tenant", tn.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		entry.AddMetadata("users_deactivated", deactivated)
		if current != nil {
			entry.AddMetadata("subscription_cancelled", current.ID())
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

	uc.logger.Infow("tenant archived",
		"tenant_id", tn.ID(),
		"users_deactivated", deactivated,
	)

	return &ArchiveTenantResult{
		Tenant:           dto.ToTenantDTO(tn),
		UsersDeactivated: deactivated,
	}, nil
}
