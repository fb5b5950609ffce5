package usecases

import (
	"context"
	"fmt"

	"github.com/sellora-inc/sellora/internal/application/subscription/dto"
	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/shared/logger"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

type ListPlansCommand struct {
	IsActive     *bool
	BillingCycle *string
	Page         int
	PageSize     int
}

type ListPlansResult struct {
	Plans      []*dto.PlanDTO `json:"plans"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ListPlansUseCase lists plans with optional status and billing-cycle filters.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) (*ListPlansResult, error) {
	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)

	plans, total, err := uc.planRepo.List(ctx, subscription.PlanFilter{
		IsActive:     cmd.IsActive,
		BillingCycle: cmd.BillingCycle,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansResult{
		Plans:      dto.ToPlanDTOList(plans),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
