package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/application/subscription/usecases"
	"github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

// SubscriptionHandler handles tenant plan assignment and subscription reads
type SubscriptionHandler struct {
	assignPlanUC         assignPlanUseCase
	calculateProrationUC calculateProrationUseCase
	getCurrentUC         getCurrentSubscriptionUseCase
	getHistoryUC         getSubscriptionHistoryUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	assignPlanUC assignPlanUseCase,
	calculateProrationUC calculateProrationUseCase,
	getCurrentUC getCurrentSubscriptionUseCase,
	getHistoryUC getSubscriptionHistoryUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		assignPlanUC:         assignPlanUC,
		calculateProrationUC: calculateProrationUC,
		getCurrentUC:         getCurrentUC,
		getHistoryUC:         getHistoryUC,
		logger:               logger,
	}
}

type AssignPlanRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

// AssignPlan assigns a plan to the tenant. A tenant with an active
// subscription gets a plan change: the old subscription is cancelled and a
// new one created in the same transaction.
func (h *SubscriptionHandler) AssignPlan(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign plan",
			"tenant_id", tenantID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	actorID, _ := actorFromContext(c)
	cmd := usecases.AssignPlanCommand{
		TenantID: tenantID,
		PlanID:   req.PlanID,
		ActorID:  actorID,
	}

	result, err := h.assignPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan assigned successfully", result)
}

// CalculateProration previews the credit/charge of moving the tenant to
// another plan without changing anything.
func (h *SubscriptionHandler) CalculateProration(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	planIDStr := c.Query("new_plan_id")
	if planIDStr == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("new_plan_id is required"))
		return
	}

	planID, err := strconv.ParseUint(planIDStr, 10, 32)
	if err != nil || planID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid new_plan_id parameter"))
		return
	}

	cmd := usecases.CalculateProrationCommand{
		TenantID:  tenantID,
		NewPlanID: uint(planID),
	}

	result, err := h.calculateProrationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCurrentUC.Execute(c.Request.Context(), usecases.GetCurrentSubscriptionCommand{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *SubscriptionHandler) GetSubscriptionHistory(c *gin.Context) {
	tenantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetSubscriptionHistoryCommand{TenantID: tenantID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
