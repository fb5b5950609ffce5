package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/domain/user"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type UnarchiveTenantCommand struct {
	TenantID  uint
	ActorID   *uint
	ActorRole string
}

type UnarchiveTenantResult struct {
	Tenant         *dto.TenantDTO `json:"tenant"`
	UsersActivated int64          `json:"users_activated"`
}

// UnarchiveTenantUseCase reverses an archive: deleted_at is cleared, the
// tenant returns to active, and its users are reactivated. The cancelled
// subscription stays cancelled; re-subscribing is a separate plan assignment.
type UnarchiveTenantUseCase struct {
	tenantRepo tenant.Repository
	userRepo   user.Repository
	auditor    audit.Recorder
	tx         Transactor
	logger     logger.Interface
}

func NewUnarchiveTenantUseCase(
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	auditor audit.Recorder,
	tx Transactor,
	logger logger.Interface,
) *UnarchiveTenantUseCase {
	return &UnarchiveTenantUseCase{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		auditor:    auditor,
		tx:         tx,
		logger:     logger,
	}
}

func (uc *UnarchiveTenantUseCase) Execute(ctx context.Context, cmd UnarchiveTenantCommand) (*UnarchiveTenantResult, error) {
	if cmd.ActorRole != constants.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("only super admins can unarchive tenants")
	}

	var (
		tn        *tenant.Tenant
		activated int64
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
		if !tn.IsArchived() {
			return nil
		}

		if err := tn.Unarchive(); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.tenantRepo.Update(txCtx, tn); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		activated, err = uc.userRepo.ActivateByTenantID(txCtx, tn.ID())
		if err != nil {
			return fmt.Errorf("failed to reactivate users: %w", err)
		}

		entry, err := audit.NewEntry(cmd.ActorID, constants.AuditActionTenantUnarchived, "tenant", tn.ID())
		if err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}
		entry.AddMetadata("users_activated", activated)
		if err := uc.auditor.Record(txCtx, entry); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("tenant unarchived",
		"tenant_id", tn.ID(),
		"users_activated", activated,
	)

	return &UnarchiveTenantResult{
		Tenant:         dto.ToTenantDTO(tn),
		UsersActivated: activated,
	}, nil
}
