package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanDTO struct {
	ID           uint             `json:"id"`
	SID          string           `json:"sid"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	BillingCycle string           `json:"billing_cycle"`
	Features     []string         `json:"features"`
	Limits       map[string]int64 `json:"limits"`
	TrialDays    int              `json:"trial_days"`
	IsActive     bool             `json:"is_active"`
	SortOrder    int              `json:"sort_order"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID        uint            `json:"id"`
	SID       string          `json:"sid"`
	TenantID  uint            `json:"tenant_id"`
	PlanID    uint            `json:"plan_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    *time.Time      `json:"ends_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type SubscriptionChangeDTO struct {
	ID        uint      `json:"id"`
	TenantID  uint      `json:"tenant_id"`
	OldPlanID *uint     `json:"old_plan_id,omitempty"`
	NewPlanID uint      `json:"new_plan_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ProrationDTO struct {
	ProrationAmount decimal.Decimal `json:"proration_amount"`
	DaysRemaining   int             `json:"days_remaining"`
	UnusedAmount    decimal.Decimal `json:"unused_amount"`
	NewAmount       decimal.Decimal `json:"new_amount"`
}
