package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Roles
	RoleSuperAdmin  = "super_admin"
	RoleTenantAdmin = "tenant_admin"
	RoleUser        = "user"

	// Tenant status
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
	TenantStatusCancelled = "cancelled"
	TenantStatusArchived  = "archived"

	// Subscription status
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"

	// Audit actions
	AuditActionPlanAssigned       = "plan_assigned"
	AuditActionPlanChanged        = "plan_changed"
	AuditActionPlanUpdated        = "plan_updated"
	AuditActionTenantSuspended    = "tenant_suspended"
	AuditActionTenantRestored     = "tenant_restored"
	AuditActionTenantDeleted      = "tenant_deleted"
	AuditActionTenantUnarchived   = "tenant_unarchived"
	AuditActionNotificationFailed = "notification_failed"

	// Database table names
	TableTenants             = "tenants"
	TablePlans               = "plans"
	TableSubscriptions       = "subscriptions"
	TableSubscriptionChanges = "subscription_changes"
	TableUsers               = "users"
	TableAuditLogs           = "audit_logs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
