package usecases

import (
	"context"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
)

// Transactor runs a function inside a single database transaction.
// shared/db.TransactionManager satisfies this.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PlanChangeNotifier delivers plan-change notices to tenant contacts.
// Delivery is best-effort: failures must never roll back the plan change.
type PlanChangeNotifier interface {
	NotifyPlanChanged(ctx context.Context, tn *tenant.Tenant, oldPlan, newPlan *subscription.Plan) error
}

// EntitlementInvalidator drops cached entitlements after a change so sibling
// services re-read from the store.
type EntitlementInvalidator interface {
	Invalidate(ctx context.Context, tenantID uint) error
}

// SIDGenerator mints Stripe-style prefixed identifiers for new records.
type SIDGenerator interface {
	NewSubscriptionSID() (string, error)
	NewPlanSID() (string, error)
}
