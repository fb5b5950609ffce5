package dto

import (
	"github.com/sellora-inc/sellora/internal/domain/subscription"
)

// ToPlanDTO converts a Plan aggregate to its presentation form.
func ToPlanDTO(plan *subscription.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}

	return &PlanDTO{
		ID:           plan.ID(),
		SID:          plan.SID(),
		Name:         plan.Name(),
		Price:        plan.Price(),
		BillingCycle: plan.BillingCycle().String(),
		Features:     plan.Features(),
		Limits:       plan.Limits(),
		TrialDays:    plan.TrialDays(),
		IsActive:     plan.IsActive(),
		SortOrder:    plan.SortOrder(),
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}
}

// ToPlanDTOList converts a slice of plans, returning an empty slice for nil input.
func ToPlanDTOList(plans []*subscription.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		if plan != nil {
			dtos = append(dtos, ToPlanDTO(plan))
		}
	}
	return dtos
}

// ToSubscriptionDTO converts a Subscription aggregate to its presentation form.
func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:        sub.ID(),
		SID:       sub.SID(),
		TenantID:  sub.TenantID(),
		PlanID:    sub.PlanID(),
		Status:    sub.Status().String(),
		Amount:    sub.Amount(),
		StartsAt:  sub.StartsAt(),
		EndsAt:    sub.EndsAt(),
		CreatedAt: sub.CreatedAt(),
	}
}

// ToSubscriptionDTOList converts a slice of subscriptions preserving order.
func ToSubscriptionDTOList(subs []*subscription.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if sub != nil {
			dtos = append(dtos, ToSubscriptionDTO(sub))
		}
	}
	return dtos
}

// ToSubscriptionChangeDTO converts a change record to its presentation form.
func ToSubscriptionChangeDTO(change *subscription.SubscriptionChange) *SubscriptionChangeDTO {
	if change == nil {
		return nil
	}

	return &SubscriptionChangeDTO{
		ID:        change.ID(),
		TenantID:  change.TenantID(),
		OldPlanID: change.OldPlanID(),
		NewPlanID: change.NewPlanID(),
		CreatedAt: change.CreatedAt(),
	}
}

// ToProrationDTO converts a proration computation to its presentation form.
func ToProrationDTO(p *subscription.Proration) *ProrationDTO {
	if p == nil {
		return nil
	}

	return &ProrationDTO{
		ProrationAmount: p.ProrationAmount,
		DaysRemaining:   p.DaysRemaining,
		UnusedAmount:    p.UnusedAmount,
		NewAmount:       p.NewAmount,
	}
}
