package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/application/tenant/usecases"
	"github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

// TenantHandler handles tenant lifecycle operations
type TenantHandler struct {
	createTenantUC       createTenantUseCase
	getTenantUC          getTenantUseCase
	listTenantsUC        listTenantsUseCase
	getEntitlementsUC    getEntitlementsUseCase
	suspendTenantUC      suspendTenantUseCase
	restoreTenantUC      restoreTenantUseCase
	archiveTenantUC      archiveTenantUseCase
	unarchiveTenantUC    unarchiveTenantUseCase
	bulkArchiveTenantsUC bulkArchiveTenantsUseCase
	logger               logger.Interface
}

func NewTenantHandler(
	createTenantUC createTenantUseCase,
	getTenantUC getTenantUseCase,
	listTenantsUC listTenantsUseCase,
	getEntitlementsUC getEntitlementsUseCase,
	suspendTenantUC suspendTenantUseCase,
	restoreTenantUC restoreTenantUseCase,
	archiveTenantUC archiveTenantUseCase,
	unarchiveTenantUC unarchiveTenantUseCase,
	bulkArchiveTenantsUC bulkArchiveTenantsUseCase,
	logger logger.Interface,
) *TenantHandler {
	return &TenantHandler{
		createTenantUC:       createTenantUC,
		getTenantUC:          getTenantUC,
		listTenantsUC:        listTenantsUC,
		getEntitlementsUC:    getEntitlementsUC,
		suspendTenantUC:      suspendTenantUC,
		restoreTenantUC:      restoreTenantUC,
		archiveTenantUC:      archiveTenantUC,
		unarchiveTenantUC:    unarchiveTenantUC,
		bulkArchiveTenantsUC: bulkArchiveTenantsUC,
		logger:               logger,
	}
}

type CreateTenantRequest struct {
	Name   string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Domain string `json:"domain" binding:"required" validate:"required,tenant_domain"`
}

type SuspendTenantRequest struct {
	Reason string `json:"reason"`
}

type BulkArchiveTenantsRequest struct {
	TenantIDs []uint `json:"tenant_ids" binding:"required,min=1"`
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tenant", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTenantCommand{
		Name:   req.Name,
		Domain: req.Domain,
	}

	result, err := h.createTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tenant created successfully")
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTenantUC.Execute(c.Request.Context(), usecases.GetTenantCommand{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, pageSize, err := parsePageQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListTenantsCommand{
		Page:     page,
		PageSize: pageSize,
	}

	if status := c.Query("status"); status != "" {
		cmd.Status = &status
	}

	if planIDStr := c.Query("plan_id"); planIDStr != "" {
		planID, err := strconv.ParseUint(planIDStr, 10, 32)
		if err != nil || planID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid plan_id parameter"))
			return
		}
		id := uint(planID)
		cmd.PlanID = &id
	}

	result, err := h.listTenantsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetEntitlements returns the tenant's effective feature and limit view.
func (h *TenantHandler) GetEntitlements(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEntitlementsUC.Execute(c.Request.Context(), usecases.GetEntitlementsCommand{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *TenantHandler) SuspendTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SuspendTenantRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for suspend tenant", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
			return
		}
	}

	actorID, _ := actorFromContext(c)
	cmd := usecases.SuspendTenantCommand{
		TenantID: tenantID,
		Reason:   req.Reason,
		ActorID:  actorID,
	}

	result, err := h.suspendTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant suspended successfully", result)
}

func (h *TenantHandler) RestoreTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := actorFromContext(c)
	cmd := usecases.RestoreTenantCommand{
		TenantID: tenantID,
		ActorID:  actorID,
	}

	result, err := h.restoreTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant restored successfully", result)
}

// ArchiveTenant soft-deletes a tenant and deactivates its users.
func (h *TenantHandler) ArchiveTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)
	cmd := usecases.ArchiveTenantCommand{
		TenantID:  tenantID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.archiveTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant archived successfully", result)
}

func (h *TenantHandler) UnarchiveTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)
	cmd := usecases.UnarchiveTenantCommand{
		TenantID:  tenantID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.unarchiveTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant unarchived successfully", result)
}

// BulkArchiveTenants archives a batch of tenants and reports per-tenant
// outcomes.
func (h *TenantHandler) BulkArchiveTenants(c *gin.Context) {
	var req BulkArchiveTenantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk archive tenants", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	actorID, actorRole := actorFromContext(c)
	cmd := usecases.BulkArchiveTenantsCommand{
		TenantIDs: req.TenantIDs,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.bulkArchiveTenantsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk archive completed", result)
}
