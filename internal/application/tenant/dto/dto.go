package dto

import (
	"time"
)

// TenantDTO is the presentation form of a tenant.
type TenantDTO struct {
	ID                 uint         `json:"id"`
	SID                string       `json:"sid"`
	Name               string       `json:"name"`
	Domain             string       `json:"domain"`
	Status             string       `json:"status"`
	PlanID             *uint        `json:"plan_id,omitempty"`
	Settings           SettingsDTO  `json:"settings"`
	SubscriptionStatus string       `json:"subscription_status,omitempty"`
	DeletedAt          *time.Time   `json:"deleted_at,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// SettingsDTO is the flattened tenant settings blob.
type SettingsDTO struct {
	Features []string               `json:"features"`
	Limits   map[string]int64       `json:"limits"`
	Extra    map[string]interface{} `json:"extra,omitempty"`
}

// EntitlementsDTO is the read-side view served to entitlement checks.
type EntitlementsDTO struct {
	TenantID  uint             `json:"tenant_id"`
	PlanID    *uint            `json:"plan_id,omitempty"`
	Features  []string         `json:"features"`
	Limits    map[string]int64 `json:"limits"`
	Suspended bool             `json:"suspended"`
}
