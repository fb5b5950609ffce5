package usecases

import (
	"context"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
)

// Transactor runs a function inside a single database transaction.
// shared/db.TransactionManager satisfies this.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EntitlementCache is the read-through cache for tenant entitlement views.
// Get returns nil on a miss.
type EntitlementCache interface {
	Get(ctx context.Context, tenantID uint) (*dto.EntitlementsDTO, error)
	Set(ctx context.Context, tenantID uint, entitlements *dto.EntitlementsDTO) error
	Invalidate(ctx context.Context, tenantID uint) error
}

// SIDGenerator mints Stripe-style prefixed identifiers for new records.
type SIDGenerator interface {
	NewTenantSID() (string, error)
}
