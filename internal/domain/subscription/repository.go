package subscription

import (
	"context"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error

	GetAllActive(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context, filter PlanFilter) ([]*Plan, int64, error)
}

type PlanFilter struct {
	IsActive     *bool
	BillingCycle *string
	Page         int
	PageSize     int
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error

	// GetActiveByTenantID returns the tenant's single active subscription,
	// nil when the tenant has none.
	GetActiveByTenantID(ctx context.Context, tenantID uint) (*Subscription, error)

	// GetByTenantID returns all subscriptions for the tenant ordered
	// most-recent-first by creation time.
	GetByTenantID(ctx context.Context, tenantID uint) ([]*Subscription, error)

	CountByPlanID(ctx context.Context, planID uint) (int64, error)
	CountActiveByTenantID(ctx context.Context, tenantID uint) (int64, error)
}

type SubscriptionChangeRepository interface {
	// Create appends a change record. Records are never updated or deleted.
	Create(ctx context.Context, change *SubscriptionChange) error

	GetByTenantID(ctx context.Context, tenantID uint) ([]*SubscriptionChange, error)
}
