package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/interfaces/http/handlers"
	"github.com/sellora-inc/sellora/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures plan catalog routes under the given API group.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := api.Group("/plans")
	{
		// Protected endpoints (read operations)
		plansProtected := plans.Group("")
		plansProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			plansProtected.GET("", cfg.PlanHandler.ListPlans)
			plansProtected.GET("/:id", cfg.PlanHandler.GetPlan)
		}

		// Admin-only endpoints (write operations)
		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		plansAdmin.Use(middleware.RequireSuperAdmin())
		{
			plansAdmin.POST("", cfg.PlanHandler.CreatePlan)
			plansAdmin.PUT("/:id", cfg.PlanHandler.UpdatePlan)
			plansAdmin.PATCH("/:id/status", cfg.PlanHandler.UpdatePlanStatus)
			plansAdmin.PUT("/:id/features", cfg.PlanHandler.UpdatePlanFeatures)
			plansAdmin.PUT("/:id/limits", cfg.PlanHandler.UpdatePlanLimits)
		}
	}
}
