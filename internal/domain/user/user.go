package user

import (
	"fmt"
	"time"
)

// User is a member of a tenant organization. Authentication lives outside
// this service; the aggregate only carries what tenant administration needs:
// role and the active flag toggled by archive/restore workflows.
type User struct {
	id        uint
	tenantID  uint
	email     string
	name      string
	role      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates an active user belonging to a tenant.
func NewUser(tenantID uint, email, name, role string) (*User, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if role == "" {
		return nil, fmt.Errorf("role is required")
	}

	now := time.Now().UTC()
	return &User{
		tenantID:  tenantID,
		email:     email,
		name:      name,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id, tenantID uint, email, name, role string, isActive bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:        id,
		tenantID:  tenantID,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

// SetID sets the user ID (only for persistence layer use).
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) TenantID() uint {
	return u.tenantID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() string {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Deactivate disables the user. Idempotent.
func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.updatedAt = time.Now().UTC()
}

// Activate re-enables the user. Idempotent.
func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.updatedAt = time.Now().UTC()
}
