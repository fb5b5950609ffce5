package usecases

import (
	"context"

	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

const maxBulkArchiveSize = 100

type BulkArchiveTenantsCommand struct {
	TenantIDs []uint
	ActorID   *uint
	ActorRole string
}

type BulkArchiveFailure struct {
	TenantID uint   `json:"tenant_id"`
	Error    string `json:"error"`
}

type BulkArchiveTenantsResult struct {
	Archived []uint               `json:"archived"`
	Failed   []BulkArchiveFailure `json:"failed"`
}

// BulkArchiveTenantsUseCase archives a batch of tenants. Each tenant is
// archived in its own transaction so one failure never rolls back the others;
// per-tenant failures are collected and reported alongside the successes.
type BulkArchiveTenantsUseCase struct {
	archive *ArchiveTenantUseCase
	logger  logger.Interface
}

func NewBulkArchiveTenantsUseCase(archive *ArchiveTenantUseCase, logger logger.Interface) *BulkArchiveTenantsUseCase {
	return &BulkArchiveTenantsUseCase{
		archive: archive,
		logger:  logger,
	}
}

func (uc *BulkArchiveTenantsUseCase) Execute(ctx context.Context, cmd BulkArchiveTenantsCommand) (*BulkArchiveTenantsResult, error) {
	if cmd.ActorRole != constants.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("only super admins can archive tenants")
	}
	if len(cmd.TenantIDs) == 0 {
		return nil, apperrors.NewValidationError("tenant IDs are required").
			WithField("tenant_ids", "must not be empty")
	}
	if len(cmd.TenantIDs) > maxBulkArchiveSize {
		return nil, apperrors.NewValidationError("too many tenants in one batch").
			WithField("tenant_ids", "at most 100 tenants per request")
	}

	result := &BulkArchiveTenantsResult{
		Archived: []uint{},
		Failed:   []BulkArchiveFailure{},
	}

	for _, tenantID := range cmd.TenantIDs {
		_, err := uc.archive.Execute(ctx, ArchiveTenantCommand{
			TenantID:  tenantID,
			ActorID:   cmd.ActorID,
			ActorRole: cmd.ActorRole,
		})
		if err != nil {
			uc.logger.Warnw("bulk archive: tenant failed", "error", err, "tenant_id", tenantID)
			result.Failed = append(result.Failed, BulkArchiveFailure{
				TenantID: tenantID,
				Error:    errorMessage(err),
			})
			continue
		}
		result.Archived = append(result.Archived, tenantID)
	}

	uc.logger.Infow("bulk archive finished",
		"requested", len(cmd.TenantIDs),
		"archived", len(result.Archived),
		"failed", len(result.Failed),
	)

	return result, nil
}

// errorMessage keeps internal error detail out of the per-tenant report.
func errorMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "internal error"
}
