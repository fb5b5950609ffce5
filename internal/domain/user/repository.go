package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByTenantID(ctx context.Context, tenantID uint) ([]*User, error)

	// DeactivateByTenantID flips is_active to false for every user of the
	// tenant. Rows are never deleted; archive workflows only deactivate.
	DeactivateByTenantID(ctx context.Context, tenantID uint) (int64, error)

	// ActivateByTenantID reverses DeactivateByTenantID.
	ActivateByTenantID(ctx context.Context, tenantID uint) (int64, error)

	CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error)
}
