package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	subusecases "github.com/sellora-inc/sellora/internal/application/subscription/usecases"
	tenantusecases "github.com/sellora-inc/sellora/internal/application/tenant/usecases"
	"github.com/sellora-inc/sellora/internal/infrastructure/auth"
	"github.com/sellora-inc/sellora/internal/infrastructure/cache"
	"github.com/sellora-inc/sellora/internal/infrastructure/config"
	"github.com/sellora-inc/sellora/internal/infrastructure/email"
	"github.com/sellora-inc/sellora/internal/infrastructure/repository"
	"github.com/sellora-inc/sellora/internal/interfaces/http/handlers"
	"github.com/sellora-inc/sellora/internal/interfaces/http/middleware"
	"github.com/sellora-inc/sellora/internal/interfaces/http/routes"
	"github.com/sellora-inc/sellora/internal/shared/db"
	"github.com/sellora-inc/sellora/internal/shared/id"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// sidGenerator adapts the shared id package to the use case ports.
type sidGenerator struct{}

func (sidGenerator) NewTenantSID() (string, error)       { return id.NewTenantSID() }
func (sidGenerator) NewPlanSID() (string, error)         { return id.NewPlanSID() }
func (sidGenerator) NewSubscriptionSID() (string, error) { return id.NewSubscriptionSID() }

// NewRouter creates a new HTTP router with all dependencies wired.
// redisClient may be nil; entitlement caching is skipped in that case.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	tenantRepo := repository.NewTenantRepository(gormDB, log)
	planRepo := repository.NewPlanRepository(gormDB, log)
	subRepo := repository.NewSubscriptionRepository(gormDB, log)
	changeRepo := repository.NewSubscriptionChangeRepository(gormDB, log)
	userRepo := repository.NewUserRepository(gormDB, log)
	auditor := repository.NewAuditLogRepository(gormDB, log)

	txManager := db.NewTransactionManager(gormDB)
	sids := sidGenerator{}

	var entitlementCache *cache.RedisEntitlementCache
	if redisClient != nil {
		entitlementCache = cache.NewRedisEntitlementCache(redisClient, log)
	}

	// Plan catalog use cases
	createPlanUC := subusecases.NewCreatePlanUseCase(planRepo, sids, log)
	updatePlanUC := subusecases.NewUpdatePlanUseCase(planRepo, log)
	getPlanUC := subusecases.NewGetPlanUseCase(planRepo, subRepo, log)
	listPlansUC := subusecases.NewListPlansUseCase(planRepo, log)
	setPlanStatusUC := subusecases.NewSetPlanStatusUseCase(planRepo, log)
	updatePlanFeaturesUC := subusecases.NewUpdatePlanFeaturesUseCase(planRepo, tenantRepo, auditor, txManager, log)
	updatePlanLimitsUC := subusecases.NewUpdatePlanLimitsUseCase(planRepo, tenantRepo, auditor, txManager, log)

	// Subscription use cases
	assignPlanUC := subusecases.NewAssignPlanUseCase(tenantRepo, planRepo, subRepo, changeRepo, auditor, txManager, sids, log)
	prorationUC := subusecases.NewCalculateProrationUseCase(tenantRepo, planRepo, subRepo, log)
	getCurrentSubUC := subusecases.NewGetCurrentSubscriptionUseCase(tenantRepo, planRepo, subRepo, log)
	getHistoryUC := subusecases.NewGetSubscriptionHistoryUseCase(tenantRepo, subRepo, changeRepo, log)

	// Tenant use cases
	createTenantUC := tenantusecases.NewCreateTenantUseCase(tenantRepo, sids, log)
	getTenantUC := tenantusecases.NewGetTenantUseCase(tenantRepo, log)
	listTenantsUC := tenantusecases.NewListTenantsUseCase(tenantRepo, log)
	getEntitlementsUC := tenantusecases.NewGetEntitlementsUseCase(tenantRepo, log)
	suspendTenantUC := tenantusecases.NewSuspendTenantUseCase(tenantRepo, auditor, txManager, log)
	restoreTenantUC := tenantusecases.NewRestoreTenantUseCase(tenantRepo, auditor, txManager, log)
	archiveTenantUC := tenantusecases.NewArchiveTenantUseCase(tenantRepo, subRepo, userRepo, auditor, txManager, log)
	unarchiveTenantUC := tenantusecases.NewUnarchiveTenantUseCase(tenantRepo, userRepo, auditor, txManager, log)
	bulkArchiveUC := tenantusecases.NewBulkArchiveTenantsUseCase(archiveTenantUC, log)

	if entitlementCache != nil {
		assignPlanUC.SetInvalidator(entitlementCache)
		updatePlanFeaturesUC.SetInvalidator(entitlementCache)
		updatePlanLimitsUC.SetInvalidator(entitlementCache)
		getEntitlementsUC.SetCache(entitlementCache)
		suspendTenantUC.SetCache(entitlementCache)
		restoreTenantUC.SetCache(entitlementCache)
		archiveTenantUC.SetCache(entitlementCache)
	}

	if cfg.Email.Enabled {
		notifier := email.NewSMTPNotifier(email.SMTPConfig{
			Host:        cfg.Email.Host,
			Port:        cfg.Email.Port,
			Username:    cfg.Email.Username,
			Password:    cfg.Email.Password,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		}, userRepo, log)
		assignPlanUC.SetNotifier(notifier)
	}

	planHandler := handlers.NewPlanHandler(
		createPlanUC,
		updatePlanUC,
		getPlanUC,
		listPlansUC,
		setPlanStatusUC,
		updatePlanFeaturesUC,
		updatePlanLimitsUC,
		log,
	)

	tenantHandler := handlers.NewTenantHandler(
		createTenantUC,
		getTenantUC,
		listTenantsUC,
		getEntitlementsUC,
		suspendTenantUC,
		restoreTenantUC,
		archiveTenantUC,
		unarchiveTenantUC,
		bulkArchiveUC,
		log,
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		assignPlanUC,
		prorationUC,
		getCurrentSubUC,
		getHistoryUC,
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler:    planHandler,
		AuthMiddleware: authMiddleware,
	})

	routes.SetupTenantRoutes(api, &routes.TenantRouteConfig{
		TenantHandler:       tenantHandler,
		SubscriptionHandler: subscriptionHandler,
		AuthMiddleware:      authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
