package tenant

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a tenant.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusCancelled: true,
	StatusArchived:  true,
}

func (s Status) String() string {
	return string(s)
}

// Subscription status values mirrored on the tenant row for quick filtering.
const (
	SubscriptionStatusNone      = ""
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

const maxTenantNameLength = 150

// Tenant is an isolated customer organization. The aggregate owns the
// tenant's plan reference and entitlement settings; archiving is a pure
// status transition and never detaches dependent rows.
type Tenant struct {
	id                 uint
	sid                string
	name               string
	domain             string
	status             Status
	planID             *uint
	settings           Settings
	subscriptionStatus string
	deletedAt          *time.Time
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTenant creates a new active tenant. The domain must be globally unique;
// uniqueness is enforced by the repository.
func NewTenant(sid, name, domain string) (*Tenant, error) {
	if sid == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if len(name) > maxTenantNameLength {
		return nil, fmt.Errorf("tenant name too long (max %d characters)", maxTenantNameLength)
	}
	if domain == "" {
		return nil, fmt.Errorf("tenant domain is required")
	}

	now := time.Now().UTC()
	return &Tenant{
		sid:       sid,
		name:      name,
		domain:    domain,
		status:    StatusActive,
		settings:  NewSettings(),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTenant rebuilds a tenant from persistence.
func ReconstructTenant(id uint, sid, name, domain string, status Status, planID *uint,
	settings Settings, subscriptionStatus string, deletedAt *time.Time, version int,
	createdAt, updatedAt time.Time) (*Tenant, error) {

	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid tenant status: %s", status)
	}

	return &Tenant{
		id:                 id,
		sid:                sid,
		name:               name,
		domain:             domain,
		status:             status,
		planID:             planID,
		settings:           settings,
		subscriptionStatus: subscriptionStatus,
		deletedAt:          deletedAt,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Tenant) ID() uint {
	return t.id
}

// SetID sets the tenant ID (only for persistence layer use).
func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Tenant) SID() string {
	return t.sid
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) Domain() string {
	return t.domain
}

func (t *Tenant) Status() Status {
	return t.status
}

// PlanID returns the current plan reference, nil when unsubscribed.
func (t *Tenant) PlanID() *uint {
	return t.planID
}

// Settings returns a deep copy of the settings blob.
func (t *Tenant) Settings() Settings {
	return t.settings.Clone()
}

func (t *Tenant) SubscriptionStatus() string {
	return t.subscriptionStatus
}

func (t *Tenant) DeletedAt() *time.Time {
	return t.deletedAt
}

func (t *Tenant) Version() int {
	return t.version
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tenant) IsArchived() bool {
	return t.status == StatusArchived
}

func (t *Tenant) IsSuspended() bool {
	return t.status == StatusSuspended
}

// Rename updates the display name.
func (t *Tenant) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	if len(name) > maxTenantNameLength {
		return fmt.Errorf("tenant name too long (max %d characters)", maxTenantNameLength)
	}
	t.name = name
	t.touch()
	return nil
}

// AssignPlan points the tenant at a plan and syncs its entitlement settings
// to the plan's current features and limits. Tenant-local settings keys are
// preserved.
func (t *Tenant) AssignPlan(planID uint, features []string, limits map[string]int64) error {
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	if t.status == StatusArchived {
		return ErrTenantArchived
	}

	t.planID = &planID
	t.settings.SyncEntitlements(features, limits)
	t.subscriptionStatus = SubscriptionStatusActive
	t.touch()
	return nil
}

// SyncEntitlements refreshes the mirrored plan entitlements without changing
// the plan reference. Used by cascading plan edits.
func (t *Tenant) SyncEntitlements(features []string, limits map[string]int64) {
	t.settings.SyncEntitlements(features, limits)
	t.touch()
}

// SetSetting stores a tenant-local settings key.
func (t *Tenant) SetSetting(key string, value interface{}) error {
	if !t.settings.Set(key, value) {
		return fmt.Errorf("settings key %q is reserved", key)
	}
	t.touch()
	return nil
}

// Suspend pauses tenant access. Entitlement settings are kept so a restore
// returns the tenant to its exact previous shape. Idempotent.
func (t *Tenant) Suspend() error {
	if t.status == StatusSuspended {
		return nil
	}
	if t.status == StatusArchived {
		return ErrTenantArchived
	}

	t.status = StatusSuspended
	t.settings.MarkSuspended()
	t.touch()
	return nil
}

// Restore reverses a suspension. Restoring an active tenant is a no-op.
func (t *Tenant) Restore() error {
	if t.status == StatusActive {
		t.settings.ClearSuspended()
		return nil
	}
	if t.status == StatusArchived {
		return ErrTenantArchived
	}

	t.status = StatusActive
	t.settings.ClearSuspended()
	t.touch()
	return nil
}

// Archive soft-deletes the tenant: status moves to archived, deleted_at is
// set, and an active subscription status is marked cancelled. Dependent rows
// are never touched here; deactivating the tenant's users is a separate
// side effect owned by the archive workflow. Idempotent.
func (t *Tenant) Archive(at time.Time) error {
	if t.status == StatusArchived {
		return nil
	}

	deleted := at.UTC()
	t.status = StatusArchived
	t.deletedAt = &deleted
	if t.subscriptionStatus == SubscriptionStatusActive {
		t.subscriptionStatus = SubscriptionStatusCancelled
	}
	t.touch()
	return nil
}

// Unarchive reverses an archive, returning the tenant to active. Idempotent
// for non-archived tenants.
func (t *Tenant) Unarchive() error {
	if t.status != StatusArchived {
		return nil
	}

	t.status = StatusActive
	t.deletedAt = nil
	t.touch()
	return nil
}

func (t *Tenant) touch() {
	t.updatedAt = time.Now().UTC()
	t.version++
}
