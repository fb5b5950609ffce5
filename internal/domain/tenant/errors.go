package tenant

import "errors"

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrTenantArchived  = errors.New("tenant is archived")
	ErrDomainTaken     = errors.New("tenant domain already exists")
	ErrInvalidStatus   = errors.New("invalid tenant status")
	ErrNoPlanAssigned  = errors.New("tenant has no plan assigned")
	ErrReservedSetting = errors.New("settings key is reserved")
)
