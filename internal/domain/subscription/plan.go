package subscription

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/sellora-inc/sellora/internal/domain/subscription/valueobjects"
)

const (
	maxPlanNameLength = 100
	maxTrialDays      = 365
)

// Plan is a named bundle of price, feature flags, and usage limits that
// tenants subscribe to. Identity is immutable; feature and limit edits are
// applied in place and cascade to subscribed tenants.
type Plan struct {
	id           uint
	sid          string
	name         string
	price        decimal.Decimal
	billingCycle vo.BillingCycle
	features     []string
	limits       map[string]int64
	trialDays    int
	isActive     bool
	sortOrder    int
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlan creates a new active plan.
func NewPlan(sid, name string, price decimal.Decimal, billingCycle vo.BillingCycle, trialDays int) (*Plan, error) {
	if sid == "" {
		return nil, fmt.Errorf("plan SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > maxPlanNameLength {
		return nil, fmt.Errorf("plan name too long (max %d characters)", maxPlanNameLength)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if !billingCycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", billingCycle)
	}
	if trialDays < 0 || trialDays > maxTrialDays {
		return nil, fmt.Errorf("trial days must be between 0 and %d", maxTrialDays)
	}

	now := time.Now().UTC()
	return &Plan{
		sid:          sid,
		name:         name,
		price:        price,
		billingCycle: billingCycle,
		features:     []string{},
		limits:       map[string]int64{},
		trialDays:    trialDays,
		isActive:     true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id uint, sid, name string, price decimal.Decimal, billingCycle vo.BillingCycle,
	features []string, limits map[string]int64, trialDays int, isActive bool, sortOrder, version int,
	createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if !billingCycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", billingCycle)
	}
	if features == nil {
		features = []string{}
	}
	if limits == nil {
		limits = map[string]int64{}
	}

	return &Plan{
		id:           id,
		sid:          sid,
		name:         name,
		price:        price,
		billingCycle: billingCycle,
		features:     features,
		limits:       limits,
		trialDays:    trialDays,
		isActive:     isActive,
		sortOrder:    sortOrder,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

// SetID sets the plan ID (only for persistence layer use).
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) SID() string {
	return p.sid
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) BillingCycle() vo.BillingCycle {
	return p.billingCycle
}

// Features returns a copy of the ordered feature flags.
func (p *Plan) Features() []string {
	return slices.Clone(p.features)
}

// Limits returns a copy of the named usage limits.
func (p *Plan) Limits() map[string]int64 {
	limits := make(map[string]int64, len(p.limits))
	for k, v := range p.limits {
		limits[k] = v
	}
	return limits
}

func (p *Plan) TrialDays() int {
	return p.trialDays
}

func (p *Plan) IsActive() bool {
	return p.isActive
}

func (p *Plan) SortOrder() int {
	return p.sortOrder
}

func (p *Plan) Version() int {
	return p.version
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) HasFeature(feature string) bool {
	return slices.Contains(p.features, feature)
}

func (p *Plan) GetLimit(key string) (int64, bool) {
	v, ok := p.limits[key]
	return v, ok
}

// Rename updates the plan name.
func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > maxPlanNameLength {
		return fmt.Errorf("plan name too long (max %d characters)", maxPlanNameLength)
	}
	p.name = name
	p.touch()
	return nil
}

// UpdatePrice updates the plan price. Existing subscriptions keep the amount
// they were charged; only new assignments pick up the new price.
func (p *Plan) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("plan price cannot be negative")
	}
	p.price = price
	p.touch()
	return nil
}

// UpdateFeatures replaces the plan's feature flags. Order is preserved.
func (p *Plan) UpdateFeatures(features []string) error {
	if features == nil {
		return fmt.Errorf("features cannot be nil")
	}
	p.features = slices.Clone(features)
	p.touch()
	return nil
}

// UpdateLimits replaces the plan's named usage limits.
func (p *Plan) UpdateLimits(limits map[string]int64) error {
	if limits == nil {
		return fmt.Errorf("limits cannot be nil")
	}
	for key, cap := range limits {
		if cap < 0 {
			return fmt.Errorf("limit %q cannot be negative", key)
		}
	}
	copied := make(map[string]int64, len(limits))
	for k, v := range limits {
		copied[k] = v
	}
	p.limits = copied
	p.touch()
	return nil
}

// UpdateTrialDays updates the trial-day count.
func (p *Plan) UpdateTrialDays(days int) error {
	if days < 0 || days > maxTrialDays {
		return fmt.Errorf("trial days must be between 0 and %d", maxTrialDays)
	}
	p.trialDays = days
	p.touch()
	return nil
}

func (p *Plan) SetSortOrder(order int) {
	p.sortOrder = order
	p.touch()
}

// Activate marks the plan as assignable. Idempotent.
func (p *Plan) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.touch()
}

// Deactivate marks the plan as no longer assignable. Tenants already
// subscribed keep their entitlements. Idempotent.
func (p *Plan) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now().UTC()
	p.version++
}
