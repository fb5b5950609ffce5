package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/interfaces/http/handlers"
	"github.com/sellora-inc/sellora/internal/interfaces/http/middleware"
)

// TenantRouteConfig holds dependencies for tenant routes.
type TenantRouteConfig struct {
	TenantHandler       *handlers.TenantHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupTenantRoutes configures tenant lifecycle and subscription routes under
// the given API group.
func SetupTenantRoutes(api *gin.RouterGroup, cfg *TenantRouteConfig) {
	tenants := api.Group("/tenants")
	tenants.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Read operations
		tenants.GET("", cfg.TenantHandler.ListTenants)
		tenants.GET("/:id", cfg.TenantHandler.GetTenant)
		tenants.GET("/:id/entitlements", cfg.TenantHandler.GetEntitlements)
		tenants.GET("/:id/subscription", cfg.SubscriptionHandler.GetCurrentSubscription)
		tenants.GET("/:id/subscription/history", cfg.SubscriptionHandler.GetSubscriptionHistory)
		tenants.GET("/:id/subscription/proration", cfg.SubscriptionHandler.CalculateProration)

		// Admin-only write operations
		tenantsAdmin := tenants.Group("")
		tenantsAdmin.Use(middleware.RequireSuperAdmin())
		{
			tenantsAdmin.POST("", cfg.TenantHandler.CreateTenant)
			tenantsAdmin.PUT("/:id/plan", cfg.SubscriptionHandler.AssignPlan)
			tenantsAdmin.POST("/:id/suspend", cfg.TenantHandler.SuspendTenant)
			tenantsAdmin.POST("/:id/restore", cfg.TenantHandler.RestoreTenant)
			tenantsAdmin.POST("/:id/unarchive", cfg.TenantHandler.UnarchiveTenant)
			tenantsAdmin.DELETE("/:id", cfg.TenantHandler.ArchiveTenant)
			tenantsAdmin.POST("/bulk-archive", cfg.TenantHandler.BulkArchiveTenants)
		}
	}
}
