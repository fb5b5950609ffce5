package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenantdto "github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/application/tenant/usecases"
	"github.com/sellora-inc/sellora/internal/interfaces/http/handlers/testutil"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	apperrors "github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type mockCreateTenantUC struct {
	executeFn func(ctx context.Context, cmd usecases.CreateTenantCommand) (*tenantdto.TenantDTO, error)
}

func (m *mockCreateTenantUC) Execute(ctx context.Context, cmd usecases.CreateTenantCommand) (*tenantdto.TenantDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockGetEntitlementsUC struct {
	executeFn func(ctx context.Context, cmd usecases.GetEntitlementsCommand) (*tenantdto.EntitlementsDTO, error)
}

func (m *mockGetEntitlementsUC) Execute(ctx context.Context, cmd usecases.GetEntitlementsCommand) (*tenantdto.EntitlementsDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockSuspendTenantUC struct {
	executeFn func(ctx context.Context, cmd usecases.SuspendTenantCommand) (*tenantdto.TenantDTO, error)
}

func (m *mockSuspendTenantUC) Execute(ctx context.Context, cmd usecases.SuspendTenantCommand) (*tenantdto.TenantDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockArchiveTenantUC struct {
	executeFn func(ctx context.Context, cmd usecases.ArchiveTenantCommand) (*usecases.ArchiveTenantResult, error)
}

func (m *mockArchiveTenantUC) Execute(ctx context.Context, cmd usecases.ArchiveTenantCommand) (*usecases.ArchiveTenantResult, error) {
	return m.executeFn(ctx, cmd)
}

type mockBulkArchiveTenantsUC struct {
	executeFn func(ctx context.Context, cmd usecases.BulkArchiveTenantsCommand) (*usecases.BulkArchiveTenantsResult, error)
}

func (m *mockBulkArchiveTenantsUC) Execute(ctx context.Context, cmd usecases.BulkArchiveTenantsCommand) (*usecases.BulkArchiveTenantsResult, error) {
	return m.executeFn(ctx, cmd)
}

func newTenantHandler(create createTenantUseCase, entitlements getEntitlementsUseCase, suspend suspendTenantUseCase, archive archiveTenantUseCase, bulk bulkArchiveTenantsUseCase) *TenantHandler {
	return NewTenantHandler(create, nil, nil, entitlements, suspend, nil, archive, nil, bulk, logger.NewLogger())
}

func TestCreateTenantHandler(t *testing.T) {
	var got usecases.CreateTenantCommand
	create := &mockCreateTenantUC{
		executeFn: func(ctx context.Context, cmd usecases.CreateTenantCommand) (*tenantdto.TenantDTO, error) {
			got = cmd
			return &tenantdto.TenantDTO{ID: 1, Name: cmd.Name, Domain: "acme.example.com"}, nil
		},
	}
	h := newTenantHandler(create, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants", CreateTenantRequest{
		Name:   "Acme",
		Domain: "acme.example.com",
	})
	h.CreateTenant(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "acme.example.com", got.Domain)
}

func TestCreateTenantHandlerInvalidDomain(t *testing.T) {
	h := newTenantHandler(&mockCreateTenantUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants", CreateTenantRequest{
		Name:   "Acme",
		Domain: "not a domain",
	})
	h.CreateTenant(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "domain")
}

func TestGetEntitlementsHandler(t *testing.T) {
	planID := uint(2)
	entitlements := &mockGetEntitlementsUC{
		executeFn: func(ctx context.Context, cmd usecases.GetEntitlementsCommand) (*tenantdto.EntitlementsDTO, error) {
			assert.Equal(t, uint(1), cmd.TenantID)
			return &tenantdto.EntitlementsDTO{
				TenantID: 1,
				PlanID:   &planID,
				Features: []string{"api"},
				Limits:   map[string]int64{"seats": 10},
			}, nil
		},
	}
	h := newTenantHandler(nil, entitlements, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/1/entitlements", nil)
	testutil.SetURLParam(c, "id", "1")
	h.GetEntitlements(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSuspendTenantHandler(t *testing.T) {
	var got usecases.SuspendTenantCommand
	suspend := &mockSuspendTenantUC{
		executeFn: func(ctx context.Context, cmd usecases.SuspendTenantCommand) (*tenantdto.TenantDTO, error) {
			got = cmd
			return &tenantdto.TenantDTO{ID: cmd.TenantID, Status: "suspended"}, nil
		},
	}
	h := newTenantHandler(nil, nil, suspend, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants/1/suspend", SuspendTenantRequest{
		Reason: "payment overdue",
	})
	testutil.SetAuthContext(c, 9, constants.RoleSuperAdmin)
	testutil.SetURLParam(c, "id", "1")
	h.SuspendTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), got.TenantID)
	assert.Equal(t, "payment overdue", got.Reason)
	require.NotNil(t, got.ActorID)
	assert.Equal(t, uint(9), *got.ActorID)
}

func TestSuspendTenantHandlerEmptyBody(t *testing.T) {
	suspend := &mockSuspendTenantUC{
		executeFn: func(ctx context.Context, cmd usecases.SuspendTenantCommand) (*tenantdto.TenantDTO, error) {
			assert.Empty(t, cmd.Reason)
			return &tenantdto.TenantDTO{ID: cmd.TenantID, Status: "suspended"}, nil
		},
	}
	h := newTenantHandler(nil, nil, suspend, nil, nil)

	// Reason body is optional.
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants/1/suspend", nil)
	testutil.SetURLParam(c, "id", "1")
	h.SuspendTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestArchiveTenantHandler(t *testing.T) {
	var got usecases.ArchiveTenantCommand
	archive := &mockArchiveTenantUC{
		executeFn: func(ctx context.Context, cmd usecases.ArchiveTenantCommand) (*usecases.ArchiveTenantResult, error) {
			got = cmd
			return &usecases.ArchiveTenantResult{
				Tenant:           &tenantdto.TenantDTO{ID: cmd.TenantID, Status: "archived"},
				UsersDeactivated: 4,
			}, nil
		},
	}
	h := newTenantHandler(nil, nil, nil, archive, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/tenants/1", nil)
	testutil.SetAuthContext(c, 9, constants.RoleSuperAdmin)
	testutil.SetURLParam(c, "id", "1")
	h.ArchiveTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), got.TenantID)
	assert.Equal(t, constants.RoleSuperAdmin, got.ActorRole)
}

func TestArchiveTenantHandlerForbidden(t *testing.T) {
	archive := &mockArchiveTenantUC{
		executeFn: func(ctx context.Context, cmd usecases.ArchiveTenantCommand) (*usecases.ArchiveTenantResult, error) {
			return nil, apperrors.NewForbiddenError("only super admins can archive tenants")
		},
	}
	h := newTenantHandler(nil, nil, nil, archive, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/tenants/1", nil)
	testutil.SetAuthContext(c, 9, "admin")
	testutil.SetURLParam(c, "id", "1")
	h.ArchiveTenant(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBulkArchiveTenantsHandler(t *testing.T) {
	var got usecases.BulkArchiveTenantsCommand
	bulk := &mockBulkArchiveTenantsUC{
		executeFn: func(ctx context.Context, cmd usecases.BulkArchiveTenantsCommand) (*usecases.BulkArchiveTenantsResult, error) {
			got = cmd
			return &usecases.BulkArchiveTenantsResult{
				Archived: []uint{1, 2},
				Failed:   []usecases.BulkArchiveFailure{{TenantID: 3, Error: "tenant not found"}},
			}, nil
		},
	}
	h := newTenantHandler(nil, nil, nil, nil, bulk)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants/bulk-archive", BulkArchiveTenantsRequest{
		TenantIDs: []uint{1, 2, 3},
	})
	testutil.SetAuthContext(c, 9, constants.RoleSuperAdmin)
	h.BulkArchiveTenants(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1, 2, 3}, got.TenantIDs)
	assert.Equal(t, constants.RoleSuperAdmin, got.ActorRole)
}

func TestBulkArchiveTenantsHandlerEmptyList(t *testing.T) {
	h := newTenantHandler(nil, nil, nil, nil, &mockBulkArchiveTenantsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tenants/bulk-archive", map[string][]uint{
		"tenant_ids": {},
	})
	h.BulkArchiveTenants(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTenantHandlerBadIDParam(t *testing.T) {
	h := newTenantHandler(nil, &mockGetEntitlementsUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tenants/zero/entitlements", nil)
	testutil.SetURLParam(c, "id", "0")
	h.GetEntitlements(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
