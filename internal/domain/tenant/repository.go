package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySID(ctx context.Context, sid string) (*Tenant, error)
	GetByDomain(ctx context.Context, domain string) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error

	// GetByIDForUpdate loads the tenant with a row-level write lock. Must be
	// called inside a transaction; it serializes concurrent plan changes for
	// the same tenant.
	GetByIDForUpdate(ctx context.Context, id uint) (*Tenant, error)

	// GetByPlanID returns every tenant currently subscribed to the plan,
	// archived tenants included, so cascades reach all dependents.
	GetByPlanID(ctx context.Context, planID uint) ([]*Tenant, error)

	ExistsByDomain(ctx context.Context, domain string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Tenant, int64, error)
}

type Filter struct {
	Status   *string
	PlanID   *uint
	Page     int
	PageSize int
}
