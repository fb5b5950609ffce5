package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

type CreateTenantCommand struct {
	Name   string
	Domain string
}

// CreateTenantUseCase provisions a new tenant. The domain is normalized to
// lower case and must be globally unique.
type CreateTenantUseCase struct {
	tenantRepo tenant.Repository
	sids       SIDGenerator
	logger     logger.Interface
}

func NewCreateTenantUseCase(tenantRepo tenant.Repository, sids SIDGenerator, logger logger.Interface) *CreateTenantUseCase {
	return &CreateTenantUseCase{
		tenantRepo: tenantRepo,
		sids:       sids,
		logger:     logger,
	}
}

func (uc *CreateTenantUseCase) Execute(ctx context.Context, cmd CreateTenantCommand) (*dto.TenantDTO, error) {
	domain := strings.ToLower(strings.TrimSpace(cmd.Domain))
	if !utils.IsValidDomain(domain) {
		return nil, apperrors.NewValidationError("invalid tenant domain").
			WithField("domain", "must be a valid domain name")
	}

	exists, err := uc.tenantRepo.ExistsByDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("tenant domain is already taken")
	}

	sid, err := uc.sids.NewTenantSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant SID: %w", err)
	}

	tn, err := tenant.NewTenant(sid, cmd.Name, domain)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.tenantRepo.Create(ctx, tn); err != nil {
		// The unique index still backstops the racy window between the
		// existence check and the insert.
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("tenant domain is already taken")
		}
		uc.logger.Errorw("failed to create tenant", "error", err, "domain", domain)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	uc.logger.Infow("tenant created", "tenant_id", tn.ID(), "sid", tn.SID(), "domain", domain)

	return dto.ToTenantDTO(tn), nil
}
