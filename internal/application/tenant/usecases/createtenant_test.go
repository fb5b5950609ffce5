package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora-inc/sellora/internal/domain/tenant"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

func buildTenant(t *testing.T, id uint) *tenant.Tenant {
	t.Helper()
	tn, err := tenant.NewTenant("tnt_test", "Acme", "acme.example.com")
	require.NoError(t, err)
	require.NoError(t, tn.SetID(id))
	return tn
}

func TestCreateTenantNormalizesDomain(t *testing.T) {
	var created *tenant.Tenant
	tenantRepo := &mockTenantRepo{
		existsByDomainFn: func(ctx context.Context, domain string) (bool, error) {
			assert.Equal(t, "acme.example.com", domain)
			return false, nil
		},
		createFn: func(ctx context.Context, tn *tenant.Tenant) error {
			created = tn
			return tn.SetID(1)
		},
	}

	uc := NewCreateTenantUseCase(tenantRepo, mockSIDs{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateTenantCommand{
		Name:   "Acme",
		Domain: "  ACME.Example.COM  ",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "tnt_mock00000000", created.SID())
	assert.Equal(t, "acme.example.com", created.Domain())

	assert.Equal(t, "acme.example.com", result.Domain)
	assert.Equal(t, "active", result.Status)
}

func TestCreateTenantInvalidDomain(t *testing.T) {
	uc := NewCreateTenantUseCase(&mockTenantRepo{}, mockSIDs{}, logger.NewLogger())

	for _, domain := range []string{"", "no spaces allowed", "-leading.example.com", "exa_mple"} {
		_, err := uc.Execute(context.Background(), CreateTenantCommand{Name: "Acme", Domain: domain})
		require.Error(t, err, "domain %q", domain)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 422, appErr.Code)
	}
}

func TestCreateTenantDomainTaken(t *testing.T) {
	tenantRepo := &mockTenantRepo{
		existsByDomainFn: func(ctx context.Context, domain string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateTenantUseCase(tenantRepo, mockSIDs{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTenantCommand{Name: "Acme", Domain: "acme.example.com"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestCreateTenantDuplicateRace(t *testing.T) {
	// Existence check passes but the insert loses the race to the unique index.
	tenantRepo := &mockTenantRepo{
		createFn: func(ctx context.Context, tn *tenant.Tenant) error {
			return errors.New("Error 1062: Duplicate entry 'acme.example.com' for key 'tenants.uk_tenants_domain'")
		},
	}

	uc := NewCreateTenantUseCase(tenantRepo, mockSIDs{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTenantCommand{Name: "Acme", Domain: "acme.example.com"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}
