package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sellora-inc/sellora/internal/application/subscription/usecases"
	"github.com/sellora-inc/sellora/internal/shared/errors"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

// PlanHandler handles plan catalog administration
type PlanHandler struct {
	createPlanUC         createPlanUseCase
	updatePlanUC         updatePlanUseCase
	getPlanUC            getPlanUseCase
	listPlansUC          listPlansUseCase
	setPlanStatusUC      setPlanStatusUseCase
	updatePlanFeaturesUC updatePlanFeaturesUseCase
	updatePlanLimitsUC   updatePlanLimitsUseCase
	logger               logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	setPlanStatusUC setPlanStatusUseCase,
	updatePlanFeaturesUC updatePlanFeaturesUseCase,
	updatePlanLimitsUC updatePlanLimitsUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:         createPlanUC,
		updatePlanUC:         updatePlanUC,
		getPlanUC:            getPlanUC,
		listPlansUC:          listPlansUC,
		setPlanStatusUC:      setPlanStatusUC,
		updatePlanFeaturesUC: updatePlanFeaturesUC,
		updatePlanLimitsUC:   updatePlanLimitsUC,
		logger:               logger,
	}
}

type CreatePlanRequest struct {
	Name         string           `json:"name" binding:"required"`
	Price        string           `json:"price" binding:"required"`
	BillingCycle string           `json:"billing_cycle" binding:"required,oneof=monthly yearly"`
	Features     []string         `json:"features"`
	Limits       map[string]int64 `json:"limits"`
	TrialDays    int              `json:"trial_days"`
	SortOrder    int              `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name      *string `json:"name"`
	Price     *string `json:"price"`
	TrialDays *int    `json:"trial_days"`
	SortOrder *int    `json:"sort_order"`
}

type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type UpdatePlanFeaturesRequest struct {
	Features []string `json:"features" binding:"required"`
}

type UpdatePlanLimitsRequest struct {
	Limits map[string]int64 `json:"limits" binding:"required"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid price"))
		return
	}

	cmd := usecases.CreatePlanCommand{
		Name:         req.Name,
		Price:        price,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
		Limits:       req.Limits,
		TrialDays:    req.TrialDays,
		SortOrder:    req.SortOrder,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.UpdatePlanCommand{
		PlanID:    planID,
		Name:      req.Name,
		TrialDays: req.TrialDays,
		SortOrder: req.SortOrder,
	}

	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid price"))
			return
		}
		cmd.Price = &price
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanCommand{PlanID: planID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	page, pageSize, err := parsePageQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListPlansCommand{
		Page:     page,
		PageSize: pageSize,
	}

	if isActiveStr := c.Query("is_active"); isActiveStr != "" {
		isActive, err := strconv.ParseBool(isActiveStr)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid is_active parameter"))
			return
		}
		cmd.IsActive = &isActive
	}

	if cycle := c.Query("billing_cycle"); cycle != "" {
		cmd.BillingCycle = &cycle
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) UpdatePlanStatus(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	cmd := usecases.SetPlanStatusCommand{
		PlanID:   planID,
		IsActive: req.Status == "active",
	}

	result, err := h.setPlanStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan status updated successfully", result)
}

// UpdatePlanFeatures replaces the plan's feature set and propagates the new
// set to every subscribed tenant.
func (h *PlanHandler) UpdatePlanFeatures(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan features",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	actorID, _ := actorFromContext(c)
	cmd := usecases.UpdatePlanFeaturesCommand{
		PlanID:   planID,
		Features: req.Features,
		ActorID:  actorID,
	}

	result, err := h.updatePlanFeaturesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan features updated successfully", result)
}

// UpdatePlanLimits replaces the plan's usage limits and propagates them to
// every subscribed tenant.
func (h *PlanHandler) UpdatePlanLimits(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan limits",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	actorID, _ := actorFromContext(c)
	cmd := usecases.UpdatePlanLimitsCommand{
		PlanID:  planID,
		Limits:  req.Limits,
		ActorID: actorID,
	}

	result, err := h.updatePlanLimitsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan limits updated successfully", result)
}
