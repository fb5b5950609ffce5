package usecases

import (
	"context"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/domain/audit"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/domain/user"
)

// Function-field mocks for the repository and port interfaces. Unset fields
// return zero values.

type mockTenantRepo struct {
	createFn           func(ctx context.Context, tn *tenant.Tenant) error
	getByIDFn          func(ctx context.Context, id uint) (*tenant.Tenant, error)
	getBySIDFn         func(ctx context.Context, sid string) (*tenant.Tenant, error)
	getByDomainFn      func(ctx context.Context, domain string) (*tenant.Tenant, error)
	updateFn           func(ctx context.Context, tn *tenant.Tenant) error
	getByIDForUpdateFn func(ctx context.Context, id uint) (*tenant.Tenant, error)
	getByPlanIDFn      func(ctx context.Context, planID uint) ([]*tenant.Tenant, error)
	existsByDomainFn   func(ctx context.Context, domain string) (bool, error)
	listFn             func(ctx context.Context, filter tenant.Filter) ([]*tenant.Tenant, int64, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, tn *tenant.Tenant) error {
	if m.createFn != nil {
		return m.createFn(ctx, tn)
	}
	return nil
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepo) GetBySID(ctx context.Context, sid string) (*tenant.Tenant, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockTenantRepo) GetByDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	if m.getByDomainFn != nil {
		return m.getByDomainFn(ctx, domain)
	}
	return nil, nil
}

func (m *mockTenantRepo) Update(ctx context.Context, tn *tenant.Tenant) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tn)
	}
	return nil
}

func (m *mockTenantRepo) GetByIDForUpdate(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.getByIDForUpdateFn != nil {
		return m.getByIDForUpdateFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepo) GetByPlanID(ctx context.Context, planID uint) ([]*tenant.Tenant, error) {
	if m.getByPlanIDFn != nil {
		return m.getByPlanIDFn(ctx, planID)
	}
	return nil, nil
}

func (m *mockTenantRepo) ExistsByDomain(ctx context.Context, domain string) (bool, error) {
	if m.existsByDomainFn != nil {
		return m.existsByDomainFn(ctx, domain)
	}
	return false, nil
}

func (m *mockTenantRepo) List(ctx context.Context, filter tenant.Filter) ([]*tenant.Tenant, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

type mockUserRepo struct {
	getByIDFn               func(ctx context.Context, id uint) (*user.User, error)
	getByTenantIDFn         func(ctx context.Context, tenantID uint) ([]*user.User, error)
	deactivateByTenantIDFn  func(ctx context.Context, tenantID uint) (int64, error)
	activateByTenantIDFn    func(ctx context.Context, tenantID uint) (int64, error)
	countActiveByTenantIDFn func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByTenantID(ctx context.Context, tenantID uint) ([]*user.User, error) {
	if m.getByTenantIDFn != nil {
		return m.getByTenantIDFn(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockUserRepo) DeactivateByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	if m.deactivateByTenantIDFn != nil {
		return m.deactivateByTenantIDFn(ctx, tenantID)
	}
	return 0, nil
}

func (m *mockUserRepo) ActivateByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	if m.activateByTenantIDFn != nil {
		return m.activateByTenantIDFn(ctx, tenantID)
	}
	return 0, nil
}

func (m *mockUserRepo) CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	if m.countActiveByTenantIDFn != nil {
		return m.countActiveByTenantIDFn(ctx, tenantID)
	}
	return 0, nil
}

type mockSubRepo struct {
	createFn                func(ctx context.Context, sub *subscription.Subscription) error
	getByIDFn               func(ctx context.Context, id uint) (*subscription.Subscription, error)
	updateFn                func(ctx context.Context, sub *subscription.Subscription) error
	getActiveByTenantIDFn   func(ctx context.Context, tenantID uint) (*subscription.Subscription, error)
	getByTenantIDFn         func(ctx context.Context, tenantID uint) ([]*subscription.Subscription, error)
	countByPlanIDFn         func(ctx context.Context, planID uint) (int64, error)
	countActiveByTenantIDFn func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockSubRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return nil
}

func (m *mockSubRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSubRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, sub)
	}
	return nil
}

func (m *mockSubRepo) GetActiveByTenantID(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	if m.getActiveByTenantIDFn != nil {
		return m.getActiveByTenantIDFn(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockSubRepo) GetByTenantID(ctx context.Context, tenantID uint) ([]*subscription.Subscription, error) {
	if m.getByTenantIDFn != nil {
		return m.getByTenantIDFn(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockSubRepo) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	if m.countByPlanIDFn != nil {
		return m.countByPlanIDFn(ctx, planID)
	}
	return 0, nil
}

func (m *mockSubRepo) CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error) {
	if m.countActiveByTenantIDFn != nil {
		return m.countActiveByTenantIDFn(ctx, tenantID)
	}
	return 0, nil
}

type mockAuditor struct {
	entries []*audit.Entry
	err     error
}

func (m *mockAuditor) Record(ctx context.Context, entry *audit.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

// mockTx runs the function directly; no real transaction is involved.
type mockTx struct {
	err error
}

func (m *mockTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockSIDs struct{}

func (mockSIDs) NewTenantSID() (string, error) { return "tnt_mock00000000", nil }

type mockCache struct {
	store       map[uint]*dto.EntitlementsDTO
	invalidated []uint
	getErr      error
	setErr      error
}

func newMockCache() *mockCache {
	return &mockCache{store: map[uint]*dto.EntitlementsDTO{}}
}

func (m *mockCache) Get(ctx context.Context, tenantID uint) (*dto.EntitlementsDTO, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.store[tenantID], nil
}

func (m *mockCache) Set(ctx context.Context, tenantID uint, entitlements *dto.EntitlementsDTO) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.store[tenantID] = entitlements
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context, tenantID uint) error {
	m.invalidated = append(m.invalidated, tenantID)
	delete(m.store, tenantID)
	return nil
}
