package subscription

import (
	"errors"
	"time"
)

// SubscriptionChange is an append-only history record of a tenant moving
// between plans. Records are never mutated or deleted.
type SubscriptionChange struct {
	id        uint
	tenantID  uint
	oldPlanID *uint
	newPlanID uint
	createdAt time.Time
}

// NewSubscriptionChange creates a plan-change record. oldPlanID is nil for the
// initial assignment.
func NewSubscriptionChange(tenantID uint, oldPlanID *uint, newPlanID uint) (*SubscriptionChange, error) {
	if tenantID == 0 {
		return nil, errors.New("tenant ID cannot be zero")
	}
	if newPlanID == 0 {
		return nil, errors.New("new plan ID cannot be zero")
	}

	return &SubscriptionChange{
		tenantID:  tenantID,
		oldPlanID: oldPlanID,
		newPlanID: newPlanID,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructSubscriptionChange rebuilds a change record from persistence.
func ReconstructSubscriptionChange(id, tenantID uint, oldPlanID *uint, newPlanID uint, createdAt time.Time) (*SubscriptionChange, error) {
	if id == 0 {
		return nil, errors.New("change ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, errors.New("tenant ID cannot be zero")
	}
	if newPlanID == 0 {
		return nil, errors.New("new plan ID cannot be zero")
	}

	return &SubscriptionChange{
		id:        id,
		tenantID:  tenantID,
		oldPlanID: oldPlanID,
		newPlanID: newPlanID,
		createdAt: createdAt,
	}, nil
}

func (c *SubscriptionChange) ID() uint {
	return c.id
}

func (c *SubscriptionChange) TenantID() uint {
	return c.tenantID
}

func (c *SubscriptionChange) OldPlanID() *uint {
	return c.oldPlanID
}

func (c *SubscriptionChange) NewPlanID() uint {
	return c.newPlanID
}

func (c *SubscriptionChange) CreatedAt() time.Time {
	return c.createdAt
}

// IsInitialAssignment reports whether this record captures a tenant's first plan.
func (c *SubscriptionChange) IsInitialAssignment() bool {
	return c.oldPlanID == nil
}
