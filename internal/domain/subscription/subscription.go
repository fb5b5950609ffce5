package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
)

// Subscription links a tenant to a plan for a bounded time window, carrying
// the amount charged at assignment time. Subscriptions are never hard-deleted;
// they only transition from active to cancelled.
type Subscription struct {
	id        uint
	sid       string
	tenantID  uint
	planID    uint
	status    vo.SubscriptionStatus
	amount    decimal.Decimal
	startsAt  time.Time
	endsAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates a new active subscription starting at startsAt.
func NewSubscription(sid string, tenantID, planID uint, amount decimal.Decimal, startsAt time.Time) (*Subscription, error) {
	if sid == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if startsAt.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:       sid,
		tenantID:  tenantID,
		planID:    planID,
		status:    vo.StatusActive,
		amount:    amount,
		startsAt:  startsAt.UTC(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(id uint, sid string, tenantID, planID uint, status vo.SubscriptionStatus,
	amount decimal.Decimal, startsAt time.Time, endsAt *time.Time, createdAt, updatedAt time.Time) (*Subscription, error) {

	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:        id,
		sid:       sid,
		tenantID:  tenantID,
		planID:    planID,
		status:    status,
		amount:    amount,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

// SetID sets the subscription ID (only for persistence layer use).
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) SID() string {
	return s.sid
}

func (s *Subscription) TenantID() uint {
	return s.tenantID
}

func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) Amount() decimal.Decimal {
	return s.amount
}

func (s *Subscription) StartsAt() time.Time {
	return s.startsAt
}

// EndsAt returns when the subscription ended, nil while active.
func (s *Subscription) EndsAt() *time.Time {
	return s.endsAt
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsActive() bool {
	return s.status == vo.StatusActive
}

// Cancel ends the subscription at the given time. Cancelling an already
// cancelled subscription is a no-op.
func (s *Subscription) Cancel(at time.Time) error {
	if s.status == vo.StatusCancelled {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status.String(), vo.StatusCancelled.String())
	}
	if at.Before(s.startsAt) {
		return fmt.Errorf("cancel time cannot be before subscription start")
	}

	ended := at.UTC()
	s.status = vo.StatusCancelled
	s.endsAt = &ended
	s.updatedAt = time.Now().UTC()
	return nil
}
